package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jhoicas/finanzas-reventa/internal/application/analytics"
)

// Service arma los archivos de exportación de un usuario.
type Service struct {
	analytics *analytics.Service
	pdf       SummaryPDFGenerator
	title     string
}

// NewService construye el servicio. title encabeza el PDF (normalmente el nombre de la app).
// La fecha de generación sale del reloj de analytics.
func NewService(a *analytics.Service, pdf SummaryPDFGenerator, title string) *Service {
	return &Service{analytics: a, pdf: pdf, title: title}
}

// ProductReportCSV reporte de rentabilidad por producto en CSV.
func (s *Service) ProductReportCSV(ctx context.Context, userID string, enc Encoding) ([]byte, error) {
	items, err := s.analytics.ProductReport(ctx, userID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteProductReportCSV(&buf, items, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MovementsCSV movimientos ordenados por fecha en CSV.
func (s *Service) MovementsCSV(ctx context.Context, userID string, enc Encoding) ([]byte, error) {
	ms, err := s.analytics.Movements(ctx, userID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteMovementsCSV(&buf, ms, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SummaryPDF resumen con indicadores, productos y movimientos.
func (s *Service) SummaryPDF(ctx context.Context, userID string) ([]byte, error) {
	totals, err := s.analytics.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.analytics.ProductReport(ctx, userID)
	if err != nil {
		return nil, err
	}
	doc, err := s.pdf.GenerateSummaryPDF(ctx, SummaryData{
		Title:       s.title,
		UserID:      userID,
		GeneratedAt: s.analytics.Now(),
		Totals:      totals,
		Products:    items,
	})
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return doc, nil
}
