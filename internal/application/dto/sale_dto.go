package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/pkg/numeric"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	ProductID     string       `json:"product_id" validate:"required"`
	SaleDate      string       `json:"sale_date" example:"2024-02-01"`
	QuantitySold  numeric.Text `json:"quantity_sold" example:"4"`
	UnitSalePrice numeric.Text `json:"unit_sale_price" example:"80"`
	Customer      string       `json:"customer"`
	Notes         string       `json:"notes"`
}

// SaleResponse salida de una venta. ProductName es "N/A" si el producto no existe.
type SaleResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SaleDate      string          `json:"sale_date"`
	QuantitySold  int             `json:"quantity_sold"`
	UnitSalePrice decimal.Decimal `json:"unit_sale_price"`
	Total         decimal.Decimal `json:"total"`
	Customer      string          `json:"customer"`
	Notes         string          `json:"notes"`
}
