package entity

import "github.com/shopspring/decimal"

// DateFormat formato ISO de las fechas almacenadas. El orden lexicográfico coincide con el cronológico.
const DateFormat = "2006-01-02"

// FinancialConfig configuración financiera del usuario (una por usuario).
type FinancialConfig struct {
	InitialCapital decimal.Decimal
	StartDate      string // AAAA-MM-DD
	Notes          string
}
