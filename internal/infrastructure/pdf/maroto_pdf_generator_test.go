package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/export"
	"github.com/jhoicas/finanzas-reventa/pkg/money"
)

func TestGenerateSummaryPDF(t *testing.T) {
	g := NewMarotoPDFGenerator(money.NewFormatter("USD"))
	out, err := g.GenerateSummaryPDF(context.Background(), export.SummaryData{
		Title:       "Finanzas",
		UserID:      "u1",
		GeneratedAt: time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC),
		Totals: &dto.TotalsResponse{
			InitialCapital: decimal.NewFromInt(1000),
			StartDate:      "2024-01-01",
			CurrentCapital: decimal.NewFromInt(820),
			TotalPurchases: decimal.NewFromInt(500),
			TotalSales:     decimal.NewFromInt(320),
			Profit:         decimal.NewFromInt(-180),
			InventoryValue: decimal.NewFromInt(300),
			VariationPct:   decimal.NewFromInt(-18),
			Movements: []dto.MovementResponse{
				{Type: "PURCHASE", Date: "2024-01-01", Amount: decimal.NewFromInt(-500), Description: "Compra de A (10 x $50.00)"},
				{Type: "SALE", Date: "2024-02-01", Amount: decimal.NewFromInt(320), Description: "Venta de A (4 x $80.00)"},
			},
		},
		Products: []dto.ProductReportItem{
			{ProductID: "p_1", Name: "A", TotalCost: decimal.NewFromInt(500), TotalSales: decimal.NewFromInt(320), Profit: decimal.NewFromInt(-180), Stock: 6, Status: dto.ProductStatusPartial},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSummaryPDF_SinRegistros(t *testing.T) {
	g := NewMarotoPDFGenerator(money.NewFormatter(""))
	out, err := g.GenerateSummaryPDF(context.Background(), export.SummaryData{
		GeneratedAt: time.Now(),
		Totals:      &dto.TotalsResponse{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateSummaryPDF_SinTotales(t *testing.T) {
	g := NewMarotoPDFGenerator(money.NewFormatter("COP"))
	_, err := g.GenerateSummaryPDF(context.Background(), export.SummaryData{})
	assert.Error(t, err)
}

func TestMovementLabel(t *testing.T) {
	assert.Equal(t, "Compra", movementLabel("PURCHASE"))
	assert.Equal(t, "Venta", movementLabel("SALE"))
	assert.Equal(t, "Ajuste", movementLabel("ADJUSTMENT"))
	assert.Equal(t, "OTRO", movementLabel("OTRO"))
}
