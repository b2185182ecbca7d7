package entity

import "github.com/shopspring/decimal"

// Product representa una compra de mercancía para reventa.
// Se crea al registrar la compra y no se elimina; el stock se deriva de las ventas.
type Product struct {
	ID                string
	Name              string
	Category          string
	PurchaseDate      string          // AAAA-MM-DD
	UnitPurchasePrice decimal.Decimal // costo unitario (>= 0)
	QuantityPurchased int             // >= 1
	Supplier          string
	Notes             string
}

// PurchaseTotal devuelve cantidad comprada * costo unitario.
func (p Product) PurchaseTotal() decimal.Decimal {
	return p.UnitPurchasePrice.Mul(decimal.NewFromInt(int64(p.QuantityPurchased)))
}
