// Package export genera los archivos descargables: reportes CSV y el resumen en PDF.
package export

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
)

// SummaryPDFGenerator puerto de generación del resumen financiero en PDF.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, data SummaryData) ([]byte, error)
}

// SummaryData datos que recibe el generador de PDF.
type SummaryData struct {
	Title       string
	UserID      string
	GeneratedAt time.Time
	Totals      *dto.TotalsResponse
	Products    []dto.ProductReportItem
}
