package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/pkg/numeric"
)

// AdjustmentRequest entrada para crear (ID vacío) o reemplazar un ajuste de capital.
type AdjustmentRequest struct {
	ID          string       `json:"id,omitempty"`
	Date        string       `json:"date" example:"2024-03-01"`
	Amount      numeric.Text `json:"amount" example:"200"`
	Description string       `json:"description" example:"aporte"`
}

// AdjustmentResponse salida de un ajuste de capital.
type AdjustmentResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
