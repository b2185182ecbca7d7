package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/pkg/numeric"
)

// CreateProductRequest entrada para registrar una compra de producto.
type CreateProductRequest struct {
	Name              string       `json:"name" validate:"required"`
	Category          string       `json:"category"`
	PurchaseDate      string       `json:"purchase_date" example:"2024-01-01"`
	UnitPurchasePrice numeric.Text `json:"unit_purchase_price" example:"50"`
	QuantityPurchased numeric.Text `json:"quantity_purchased" example:"10"`
	Supplier          string       `json:"supplier"`
	Notes             string       `json:"notes"`
}

// ProductResponse salida de un producto con su stock actual.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	PurchaseDate      string          `json:"purchase_date"`
	UnitPurchasePrice decimal.Decimal `json:"unit_purchase_price"`
	QuantityPurchased int             `json:"quantity_purchased"`
	PurchaseTotal     decimal.Decimal `json:"purchase_total"`
	Stock             int             `json:"stock"`
	Supplier          string          `json:"supplier"`
	Notes             string          `json:"notes"`
}
