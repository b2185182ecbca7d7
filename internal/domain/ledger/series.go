package ledger

import (
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BuildSeries arranca en (fecha de inicio, capital inicial) y agrega un punto por movimiento
// con el capital acumulado. Fechas repetidas generan puntos repetidos; len = movimientos + 1.
func (c *Calculator) BuildSeries(s entity.Snapshot) entity.Series {
	movs := c.BuildMovements(s)
	labels := make([]string, 0, len(movs)+1)
	values := make([]decimal.Decimal, 0, len(movs)+1)

	capital := s.Config.InitialCapital
	labels = append(labels, c.dateOrToday(s.Config.StartDate))
	values = append(values, capital)

	for _, m := range movs {
		capital = capital.Add(m.Amount)
		labels = append(labels, m.Date)
		values = append(values, capital)
	}
	return entity.Series{Labels: labels, Values: values}
}
