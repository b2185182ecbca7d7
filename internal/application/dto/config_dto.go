package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/pkg/numeric"
)

// ConfigRequest entrada para reemplazar la configuración financiera.
type ConfigRequest struct {
	InitialCapital numeric.Text `json:"initial_capital" example:"1000"`
	StartDate      string       `json:"start_date" example:"2024-01-01"`
	Notes          string       `json:"notes"`
}

// ConfigResponse salida de la configuración financiera.
type ConfigResponse struct {
	InitialCapital decimal.Decimal `json:"initial_capital"`
	StartDate      string          `json:"start_date"`
	Notes          string          `json:"notes"`
}
