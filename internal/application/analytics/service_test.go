package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/ledger"
)

type stubReader struct {
	snap entity.Snapshot
	err  error
}

func (r stubReader) Snapshot(context.Context, string) (entity.Snapshot, error) {
	return r.snap, r.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newCalc() *ledger.Calculator {
	fixed := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	return ledger.NewCalculator(ledger.WithClock(func() time.Time { return fixed }))
}

// Capital 1000; A: 10 @ 50, vendidas 4 @ 80; B: 2 @ 30, vendidas 2 @ 45; C: 5 @ 10 sin ventas; ajuste +200.
func sampleSnapshot() entity.Snapshot {
	return entity.Snapshot{
		Config: entity.FinancialConfig{InitialCapital: dec("1000"), StartDate: "2024-01-01"},
		Products: []entity.Product{
			{ID: "p_a", Name: "A", PurchaseDate: "2024-01-01", UnitPurchasePrice: dec("50"), QuantityPurchased: 10},
			{ID: "p_b", Name: "B", PurchaseDate: "2024-01-02", UnitPurchasePrice: dec("30"), QuantityPurchased: 2},
			{ID: "p_c", Name: "C", PurchaseDate: "2024-01-03", UnitPurchasePrice: dec("10"), QuantityPurchased: 5},
		},
		Sales: []entity.Sale{
			{ID: "v_1", ProductID: "p_a", SaleDate: "2024-02-01", QuantitySold: 4, UnitSalePrice: dec("80")},
			{ID: "v_2", ProductID: "p_b", SaleDate: "2024-02-02", QuantitySold: 2, UnitSalePrice: dec("45")},
		},
		Adjustments: []entity.CapitalAdjustment{
			{ID: "a_1", Date: "2024-03-01", Amount: dec("200"), Description: "aporte"},
		},
	}
}

func TestTotals_Agregados(t *testing.T) {
	svc := NewService(stubReader{snap: sampleSnapshot()}, newCalc())
	out, err := svc.Totals(context.Background(), "u")
	require.NoError(t, err)

	// compras 500+60+50=610; ventas 320+90=410; capital 1000-610+410+200=1000
	assert.True(t, dec("610").Equal(out.TotalPurchases))
	assert.True(t, dec("410").Equal(out.TotalSales))
	assert.True(t, dec("-200").Equal(out.Profit))
	assert.True(t, dec("1000").Equal(out.CurrentCapital))
	// inventario: 6*50 + 0*30 + 5*10 = 350
	assert.True(t, dec("350").Equal(out.InventoryValue))
	assert.True(t, dec("-20").Equal(out.VariationPct))
	assert.Len(t, out.Movements, 6)
	assert.Equal(t, "2024-01-01", out.StartDate)
}

func TestTotals_VariacionConCapitalCero(t *testing.T) {
	snap := sampleSnapshot()
	snap.Config.InitialCapital = decimal.Zero
	svc := NewService(stubReader{snap: snap}, newCalc())
	out, err := svc.Totals(context.Background(), "u")
	require.NoError(t, err)
	assert.True(t, out.VariationPct.IsZero())
}

func TestTotals_ErrorDelLector(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(stubReader{err: boom}, newCalc())
	_, err := svc.Totals(context.Background(), "u")
	assert.ErrorIs(t, err, boom)
	_, err = svc.Series(context.Background(), "u")
	assert.ErrorIs(t, err, boom)
	_, err = svc.ProductReport(context.Background(), "u")
	assert.ErrorIs(t, err, boom)
}

func TestSeries_UltimoValorIgualCapitalActual(t *testing.T) {
	svc := NewService(stubReader{snap: sampleSnapshot()}, newCalc())
	out, err := svc.Series(context.Background(), "u")
	require.NoError(t, err)
	require.Len(t, out.Labels, 7)
	require.Len(t, out.Values, 7)
	assert.Equal(t, "2024-01-01", out.Labels[0])
	assert.True(t, dec("1000").Equal(out.Values[0]))
	assert.True(t, dec("1000").Equal(out.Values[6]))
}

func TestMovements_OrdenadosPorFecha(t *testing.T) {
	svc := NewService(stubReader{snap: sampleSnapshot()}, newCalc())
	ms, err := svc.Movements(context.Background(), "u")
	require.NoError(t, err)
	require.Len(t, ms, 6)
	for i := 1; i < len(ms); i++ {
		assert.LessOrEqual(t, ms[i-1].Date, ms[i].Date)
	}
	assert.Equal(t, "ADJUSTMENT", ms[5].Type)
}

func TestProductReport(t *testing.T) {
	items := BuildProductReport(sampleSnapshot())
	require.Len(t, items, 3)

	a := items[0]
	assert.True(t, dec("500").Equal(a.TotalCost))
	assert.True(t, dec("320").Equal(a.TotalSales))
	assert.True(t, dec("-180").Equal(a.Profit))
	assert.True(t, dec("-56.25").Equal(a.MarginPct))
	assert.True(t, dec("-36").Equal(a.ROIPct))
	assert.Equal(t, 6, a.Stock)
	assert.Equal(t, dto.ProductStatusPartial, a.Status)

	b := items[1]
	assert.True(t, dec("30").Equal(b.Profit))
	assert.True(t, dec("33.33").Equal(b.MarginPct))
	assert.True(t, dec("50").Equal(b.ROIPct))
	assert.Equal(t, dto.ProductStatusSold, b.Status)

	c := items[2]
	assert.True(t, c.MarginPct.IsZero())
	assert.Equal(t, dto.ProductStatusInStock, c.Status)
}

func TestProductReport_SinProductos(t *testing.T) {
	items := BuildProductReport(entity.Snapshot{})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProductReport_IDRepetidoUsaStockDelPrimero(t *testing.T) {
	snap := entity.Snapshot{
		Products: []entity.Product{
			{ID: "p_x", Name: "Primero", UnitPurchasePrice: dec("10"), QuantityPurchased: 10},
			{ID: "p_x", Name: "Repetido", UnitPurchasePrice: dec("10"), QuantityPurchased: 3},
		},
		Sales: []entity.Sale{
			{ID: "v_1", ProductID: "p_x", QuantitySold: 4, UnitSalePrice: dec("20")},
		},
	}
	items := BuildProductReport(snap)
	require.Len(t, items, 2)

	stock := ledger.StockByProduct(snap)
	assert.Equal(t, stock["p_x"], items[0].Stock)
	assert.Equal(t, 6, items[0].Stock)
	assert.Equal(t, 6, items[1].Stock)
	assert.Equal(t, dto.ProductStatusPartial, items[0].Status)
	// 6 unidades no es menos que las 3 compradas en esta fila
	assert.Equal(t, dto.ProductStatusInStock, items[1].Status)
	assert.True(t, dec("80").Equal(items[1].TotalSales))
}

func TestProductStatus(t *testing.T) {
	cases := []struct {
		stock, purchased int
		want             string
	}{
		{0, 5, dto.ProductStatusSold},
		{-1, 5, dto.ProductStatusSold},
		{2, 5, dto.ProductStatusPartial},
		{5, 5, dto.ProductStatusInStock},
		{7, 5, dto.ProductStatusInStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, productStatus(tc.stock, tc.purchased), "stock=%d comprado=%d", tc.stock, tc.purchased)
	}
}
