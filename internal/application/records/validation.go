package records

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/internal/domain"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/pkg/numeric"
)

// parseAmount interpreta un monto; field se usa en el mensaje de error.
func parseAmount(field string, raw numeric.Text) (decimal.Decimal, error) {
	d, err := numeric.Parse(raw.String())
	if err != nil {
		if errors.Is(err, numeric.ErrInvalid) {
			return decimal.Zero, fmt.Errorf("%w: %s=%q", domain.ErrInvalidNumber, field, raw)
		}
		return decimal.Zero, err
	}
	return d, nil
}

// parsePositiveAmount exige monto > 0.
func parsePositiveAmount(field string, raw numeric.Text) (decimal.Decimal, error) {
	d, err := parseAmount(field, raw)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s debe ser mayor que cero", domain.ErrInvalidInput, field)
	}
	return d, nil
}

// parseQuantity exige un entero entre 1 y numeric.MaxQuantity.
func parseQuantity(field string, raw numeric.Text) (int, error) {
	d, err := parseAmount(field, raw)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || !d.IsPositive() {
		return 0, fmt.Errorf("%w: %s debe ser un entero mayor que cero", domain.ErrInvalidInput, field)
	}
	if d.GreaterThan(decimal.NewFromInt(numeric.MaxQuantity)) {
		return 0, fmt.Errorf("%w: %s no puede superar %d", domain.ErrInvalidInput, field, numeric.MaxQuantity)
	}
	return int(d.IntPart()), nil
}

// normalizeDate valida AAAA-MM-DD; vacío se reemplaza por today.
func normalizeDate(field, date, today string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return today, nil
	}
	if _, err := time.Parse(entity.DateFormat, date); err != nil {
		return "", fmt.Errorf("%w: %s=%q", domain.ErrInvalidDate, field, date)
	}
	return date, nil
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
	}
	return value, nil
}

func intDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
