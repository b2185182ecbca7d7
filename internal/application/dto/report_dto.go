package dto

import "github.com/shopspring/decimal"

// Estados de un producto en el reporte.
const (
	ProductStatusInStock = "EN_STOCK"
	ProductStatusPartial = "PARCIAL"
	ProductStatusSold    = "VENDIDO"
)

// ProductReportItem rentabilidad de un producto.
type ProductReportItem struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Profit     decimal.Decimal `json:"profit"`
	MarginPct  decimal.Decimal `json:"margin_pct"` // profit / total_sales * 100
	ROIPct     decimal.Decimal `json:"roi_pct"`    // profit / total_cost * 100
	Stock      int             `json:"stock"`
	Status     string          `json:"status"`
}
