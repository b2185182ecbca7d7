// Package ledger deriva los movimientos financieros, los totales y la serie de capital
// a partir de un entity.Snapshot. Todas las operaciones son puras: no modifican ni retienen
// el snapshot y nunca devuelven error (los campos vacíos o en cero se toleran).
package ledger

import (
	"time"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MoneyFormatter formatea montos dentro de las descripciones de los movimientos.
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

type plainFormatter struct{}

func (plainFormatter) Format(amount decimal.Decimal) string { return amount.StringFixed(2) }

// Calculator motor de derivación financiera. Sin estado propio salvo reloj y formateador.
type Calculator struct {
	now   func() time.Time
	money MoneyFormatter
}

// Option configura un Calculator.
type Option func(*Calculator)

// WithClock fija el reloj usado para la fecha por defecto de registros sin fecha.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMoneyFormatter fija el formateador de montos de las descripciones.
func WithMoneyFormatter(f MoneyFormatter) Option {
	return func(c *Calculator) {
		if f != nil {
			c.money = f
		}
	}
}

// NewCalculator construye el calculador. Por defecto usa time.Now y formato decimal simple.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now, money: plainFormatter{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now devuelve la hora del reloj del calculador.
func (c *Calculator) Now() time.Time {
	return c.now()
}

// Today devuelve la fecha actual del reloj del calculador en formato AAAA-MM-DD.
func (c *Calculator) Today() string {
	return c.now().Format(entity.DateFormat)
}

func (c *Calculator) dateOrToday(date string) string {
	if date == "" {
		return c.Today()
	}
	return date
}
