// Package numeric interpreta montos ingresados por el usuario.
//
// Parse es estricto y se usa al validar entradas; Lenient conserva la permisividad de los
// respaldos antiguos, donde un valor vacío o no numérico vale cero.
package numeric

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity mayor cantidad aceptada; coincide con las columnas INTEGER de PostgreSQL.
const MaxQuantity = math.MaxInt32

var maxQuantity = decimal.NewFromInt(MaxQuantity)

// ErrInvalid se devuelve cuando el texto no representa un número.
var ErrInvalid = errors.New("numeric: valor inválido")

// Parse convierte texto en decimal. Acepta coma como separador decimal ("12,50").
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalid
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalid
	}
	return d, nil
}

// ParseOrZero es Parse sin error: cualquier entrada inválida vale cero.
func ParseOrZero(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Lenient decimal que acepta número JSON, texto o null al deserializar.
type Lenient struct {
	decimal.Decimal
}

// UnmarshalJSON nunca falla por el contenido: lo que no sea numérico queda en cero.
func (l *Lenient) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		l.Decimal = decimal.Zero
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			l.Decimal = decimal.Zero
			return nil
		}
		l.Decimal = ParseOrZero(s)
	default:
		l.Decimal = ParseOrZero(string(b))
	}
	return nil
}

// MarshalJSON serializa como número JSON.
func (l Lenient) MarshalJSON() ([]byte, error) {
	return []byte(l.Decimal.String()), nil
}

// Int devuelve la parte entera (las cantidades se guardan como enteros).
// Fuera de ±MaxQuantity vale cero, igual que cualquier otro valor no utilizable.
func (l Lenient) Int() int {
	if l.Decimal.Abs().GreaterThan(maxQuantity) {
		return 0
	}
	return int(l.Decimal.IntPart())
}

// L construye un Lenient a partir de un decimal.
func L(d decimal.Decimal) Lenient { return Lenient{Decimal: d} }
