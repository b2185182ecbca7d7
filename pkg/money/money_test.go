package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/finanzas-reventa/pkg/money"
)

func TestFormatter_USD(t *testing.T) {
	f := money.NewFormatter("USD")
	assert.Equal(t, "$1,234.56", f.Format(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "$50.00", f.Format(decimal.NewFromInt(50)))
	assert.Equal(t, "-$10.00", f.Format(decimal.NewFromInt(-10)))
}

func TestFormatter_Redondeo(t *testing.T) {
	f := money.NewFormatter("USD")
	assert.Equal(t, "$0.13", f.Format(decimal.RequireFromString("0.125")))
}

func TestFormatter_MonedaPorDefecto(t *testing.T) {
	assert.Equal(t, money.DefaultCurrency, money.NewFormatter("").Currency())
}

func TestFormatter_MontoFueraDeRango(t *testing.T) {
	f := money.NewFormatter("USD")
	assert.Equal(t, "100000000000000000000.00 USD", f.Format(decimal.RequireFromString("1e20")))
	assert.Equal(t, "-100000000000000000000.00 USD", f.Format(decimal.RequireFromString("-1e20")))
}

func TestFormatter_MonedaDesconocida(t *testing.T) {
	assert.False(t, money.Supported("XYZ"))
	assert.True(t, money.Supported("BRL"))
	assert.Equal(t, "50.75 XYZ", money.NewFormatter("XYZ").Format(decimal.RequireFromString("50.75")))
}
