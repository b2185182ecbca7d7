package entity

import "github.com/shopspring/decimal"

// MovementType tipo de movimiento financiero derivado.
type MovementType string

// Tipos de movimiento.
const (
	MovementPurchase   MovementType = "PURCHASE"
	MovementSale       MovementType = "SALE"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// Movement movimiento financiero derivado (no se persiste).
// Amount negativo para compras, positivo para ventas, con el signo almacenado para ajustes.
type Movement struct {
	Type        MovementType
	Date        string
	Amount      decimal.Decimal
	Description string
}

// Totals agregados financieros calculados desde un Snapshot.
type Totals struct {
	Movements      []Movement
	CurrentCapital decimal.Decimal
	TotalPurchases decimal.Decimal
	TotalSales     decimal.Decimal
	Profit         decimal.Decimal
	InventoryValue decimal.Decimal // stock sin vender valorizado al costo
}

// Series evolución del capital para gráficos; Labels[i] corresponde a Values[i].
type Series struct {
	Labels []string
	Values []decimal.Decimal
}
