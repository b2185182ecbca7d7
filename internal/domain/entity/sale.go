package entity

import "github.com/shopspring/decimal"

// Sale representa la venta de unidades de un Product.
// ProductID debe existir al momento de crear la venta; en listados se tolera una referencia colgante.
type Sale struct {
	ID            string
	ProductID     string
	SaleDate      string // AAAA-MM-DD
	QuantitySold  int    // 1 <= cantidad <= stock disponible al crear
	UnitSalePrice decimal.Decimal
	Customer      string
	Notes         string
}

// SaleTotal devuelve cantidad vendida * precio unitario.
func (s Sale) SaleTotal() decimal.Decimal {
	return s.UnitSalePrice.Mul(decimal.NewFromInt(int64(s.QuantitySold)))
}
