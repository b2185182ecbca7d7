package dto

import "github.com/shopspring/decimal"

// MovementResponse movimiento financiero derivado.
type MovementResponse struct {
	Type        string          `json:"type"` // PURCHASE, SALE, ADJUSTMENT
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// TotalsResponse respuesta de GET /api/users/{userID}/totals.
type TotalsResponse struct {
	InitialCapital decimal.Decimal    `json:"initial_capital"`
	StartDate      string             `json:"start_date"`
	CurrentCapital decimal.Decimal    `json:"current_capital"`
	TotalPurchases decimal.Decimal    `json:"total_purchases"`
	TotalSales     decimal.Decimal    `json:"total_sales"`
	Profit         decimal.Decimal    `json:"profit"`
	InventoryValue decimal.Decimal    `json:"inventory_value"` // stock sin vender al costo
	VariationPct   decimal.Decimal    `json:"variation_pct"`   // profit / initial_capital * 100
	Movements      []MovementResponse `json:"movements"`
}

// SeriesResponse serie de capital para gráficos (labels[i] ↔ values[i]).
type SeriesResponse struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}
