// Package money formatea montos decimales según la moneda configurada (go-money).
package money

import (
	"math"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency moneda usada cuando la configuración no define una.
const DefaultCurrency = "COP"

var (
	minMinor = decimal.NewFromInt(math.MinInt64)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// Supported indica si el código ISO 4217 es conocido por go-money.
func Supported(code string) bool {
	return gomoney.GetCurrency(code) != nil
}

// Formatter formatea montos en una moneda ISO 4217.
type Formatter struct {
	currency string
}

// NewFormatter construye el formateador; un código vacío usa DefaultCurrency.
func NewFormatter(currency string) *Formatter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Formatter{currency: currency}
}

// Currency devuelve el código de moneda.
func (f *Formatter) Currency() string { return f.currency }

// Format devuelve el monto con símbolo y separadores de la moneda, ej. "$1,234.56" en USD.
// Una moneda desconocida o un monto que no cabe en int64 unidades menores se muestra
// como decimal seguido del código, ej. "100000000000000000000.00 USD".
func (f *Formatter) Format(amount decimal.Decimal) string {
	cur := gomoney.GetCurrency(f.currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + f.currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return amount.StringFixed(int32(cur.Fraction)) + " " + f.currency
	}
	return gomoney.New(minor.IntPart(), f.currency).Display()
}
