package entity

import "github.com/shopspring/decimal"

// CapitalAdjustment aporte o retiro manual de capital. Amount con signo y nunca cero.
type CapitalAdjustment struct {
	ID          string
	Date        string // AAAA-MM-DD
	Amount      decimal.Decimal
	Description string
}
