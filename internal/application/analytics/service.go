// Package analytics expone los totales, la serie de capital y el reporte de rentabilidad
// por producto calculados sobre los registros de cada usuario.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/ledger"
)

// pctPlaces decimales de los porcentajes.
const pctPlaces = 2

var hundred = decimal.NewFromInt(100)

// SnapshotReader fuente de registros (records.Service la implementa).
type SnapshotReader interface {
	Snapshot(ctx context.Context, userID string) (entity.Snapshot, error)
}

// Service casos de uso de lectura. Los totales se recalculan en cada llamada.
type Service struct {
	reader SnapshotReader
	calc   *ledger.Calculator
}

// NewService construye el servicio.
func NewService(reader SnapshotReader, calc *ledger.Calculator) *Service {
	return &Service{reader: reader, calc: calc}
}

// Now hora del reloj con el que se calculan los registros sin fecha.
func (s *Service) Now() time.Time {
	return s.calc.Now()
}

// Totals devuelve los agregados financieros y la lista de movimientos ordenada por fecha.
func (s *Service) Totals(ctx context.Context, userID string) (*dto.TotalsResponse, error) {
	snap, err := s.reader.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildTotals(s.calc, snap), nil
}

// Movements devuelve solo los movimientos derivados.
func (s *Service) Movements(ctx context.Context, userID string) ([]dto.MovementResponse, error) {
	snap, err := s.reader.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toMovements(s.calc.BuildMovements(snap)), nil
}

// Series devuelve la evolución del capital.
func (s *Service) Series(ctx context.Context, userID string) (*dto.SeriesResponse, error) {
	snap, err := s.reader.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	series := s.calc.BuildSeries(snap)
	return &dto.SeriesResponse{Labels: series.Labels, Values: series.Values}, nil
}

// ProductReport devuelve la rentabilidad de cada producto en el orden en que fueron registrados.
func (s *Service) ProductReport(ctx context.Context, userID string) ([]dto.ProductReportItem, error) {
	snap, err := s.reader.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildProductReport(snap), nil
}

// BuildTotals arma la respuesta de totales a partir de un snapshot.
// La variación es profit / capital inicial * 100, o 0 si el capital inicial es 0.
func BuildTotals(calc *ledger.Calculator, snap entity.Snapshot) *dto.TotalsResponse {
	t := calc.ComputeTotals(snap)
	return &dto.TotalsResponse{
		InitialCapital: snap.Config.InitialCapital,
		StartDate:      snap.Config.StartDate,
		CurrentCapital: t.CurrentCapital,
		TotalPurchases: t.TotalPurchases,
		TotalSales:     t.TotalSales,
		Profit:         t.Profit,
		InventoryValue: t.InventoryValue,
		VariationPct:   percent(t.Profit, snap.Config.InitialCapital),
		Movements:      toMovements(t.Movements),
	}
}

// BuildProductReport calcula costo, ventas, ganancia, margen, ROI y estado por producto.
// El stock sale de ledger.StockByProduct: con IDs repetidos manda el primer producto.
func BuildProductReport(snap entity.Snapshot) []dto.ProductReportItem {
	salesTotal := make(map[string]decimal.Decimal, len(snap.Products))
	for _, v := range snap.Sales {
		salesTotal[v.ProductID] = salesTotal[v.ProductID].Add(v.SaleTotal())
	}
	stock := ledger.StockByProduct(snap)

	items := make([]dto.ProductReportItem, 0, len(snap.Products))
	for _, p := range snap.Products {
		total := salesTotal[p.ID]
		cost := p.PurchaseTotal()
		profit := total.Sub(cost)
		items = append(items, dto.ProductReportItem{
			ProductID:  p.ID,
			Name:       p.Name,
			TotalCost:  cost,
			TotalSales: total,
			Profit:     profit,
			MarginPct:  percent(profit, total),
			ROIPct:     percent(profit, cost),
			Stock:      stock[p.ID],
			Status:     productStatus(stock[p.ID], p.QuantityPurchased),
		})
	}
	return items
}

// productStatus: sin stock VENDIDO, con menos de lo comprado PARCIAL, si no EN_STOCK.
func productStatus(stock, purchased int) string {
	switch {
	case stock <= 0:
		return dto.ProductStatusSold
	case stock < purchased:
		return dto.ProductStatusPartial
	default:
		return dto.ProductStatusInStock
	}
}

// percent devuelve part/whole*100 redondeado; 0 si whole es 0.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(pctPlaces)
}

func toMovements(ms []entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, dto.MovementResponse{
			Type:        string(m.Type),
			Date:        m.Date,
			Amount:      m.Amount,
			Description: m.Description,
		})
	}
	return out
}
