package cli

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/pkg/money"
)

const sampleBackup = `{
  "version": 1,
  "config": {"initial_capital": 1000, "start_date": "2024-01-01"},
  "products": [
    {"id": "p_1", "name": "Tênis", "purchase_date": "2024-01-01", "unit_purchase_price": 50, "quantity_purchased": 10}
  ],
  "sales": [
    {"id": "v_1", "product_id": "p_1", "sale_date": "2024-02-01", "quantity_sold": 4, "unit_sale_price": 80}
  ],
  "adjustments": [
    {"id": "a_1", "date": "2024-03-01", "amount": 200, "description": "aporte"}
  ]
}`

func writeBackup(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var out bytes.Buffer
	fs := flag.NewFlagSet("cfctl", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "cfctl")
	Register(commander, &out)
	require.NoError(t, fs.Parse(args))
	status := commander.Execute(context.Background())
	return out.String(), status
}

func TestTotals(t *testing.T) {
	path := writeBackup(t, sampleBackup)
	out, status := run(t, "totals", "-f", path, "-plain", "-currency", "USD")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| **Capital actual** | **$1,020.00** |")
	assert.Contains(t, out, "| Valor del inventario | $300.00 |")
	assert.Contains(t, out, "3 movimientos.")
}

func TestMovements(t *testing.T) {
	path := writeBackup(t, sampleBackup)
	out, status := run(t, "movements", "-f", path, "-plain", "-currency", "USD")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| 2024-01-01 | PURCHASE | Compra de Tênis (10 x $50.00) | -$500.00 |")
	assert.Contains(t, out, "| 2024-03-01 | ADJUSTMENT | aporte | $200.00 |")
}

func TestSeriesYReport(t *testing.T) {
	path := writeBackup(t, sampleBackup)
	out, status := run(t, "series", "-f", path, "-plain", "-currency", "USD")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| 3 | 2024-03-01 | $1,020.00 |")

	out, status = run(t, "report", "-f", path, "-plain", "-currency", "USD")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "PARCIAL")
}

func TestCheck_SinProblemas(t *testing.T) {
	path := writeBackup(t, sampleBackup)
	out, status := run(t, "check", "-f", path, "-plain")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Sin problemas.")
}

func TestCheck_ConProblemas(t *testing.T) {
	path := writeBackup(t, `{
	  "config": {"initial_capital": 0, "start_date": ""},
	  "products": [{"id": "p_1", "name": "A", "purchase_date": "2024-01-01", "unit_purchase_price": 10, "quantity_purchased": 1}],
	  "sales": [
	    {"id": "v_1", "product_id": "p_1", "sale_date": "2024-02-01", "quantity_sold": 3, "unit_sale_price": 5},
	    {"id": "v_2", "product_id": "p_9", "sale_date": "2024-02-01", "quantity_sold": 1, "unit_sale_price": 5}
	  ]
	}`)
	out, status := run(t, "check", "-f", path, "-plain")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, "fecha de inicio inválida")
	assert.Contains(t, out, "stock negativo (-2)")
	assert.Contains(t, out, `producto inexistente "p_9"`)
}

func TestArchivoInexistente(t *testing.T) {
	_, status := run(t, "totals", "-f", filepath.Join(t.TempDir(), "nada.json"), "-plain")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestMonedaDesconocida(t *testing.T) {
	path := writeBackup(t, sampleBackup)
	_, status := run(t, "totals", "-f", path, "-plain", "-currency", "XYZ")
	assert.Equal(t, subcommands.ExitFailure, status)

	out, status := run(t, "totals", "-f", path, "-plain", "-currency", "usd")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "$1,020.00")
}

func TestRespaldoInvalido(t *testing.T) {
	path := writeBackup(t, `{"config": {"initial_capital": 1}}`)
	_, status := run(t, "totals", "-f", path, "-plain")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestCheck_IDRepetidoYAjusteCero(t *testing.T) {
	d := decimal.NewFromInt
	issues := Check(entity.Snapshot{
		Config: entity.FinancialConfig{StartDate: "2024-01-01"},
		Products: []entity.Product{
			{ID: "p_1", PurchaseDate: "2024-01-01", UnitPurchasePrice: d(1), QuantityPurchased: 1},
			{ID: "p_1", PurchaseDate: "2024-01-01", UnitPurchasePrice: d(1), QuantityPurchased: 1},
		},
		Adjustments: []entity.CapitalAdjustment{{ID: "a_1", Date: "2024-01-05"}},
	})
	require.Len(t, issues, 2)
	assert.Equal(t, "p_1", issues[0].Record)
	assert.Equal(t, "a_1", issues[1].Record)
}

func TestMarkdownVacios(t *testing.T) {
	m := money.NewFormatter("USD")
	assert.Contains(t, MovementsMarkdown(nil, m), "Sin movimientos.")
	assert.Contains(t, ReportMarkdown(nil, m), "Sin productos.")
	assert.Contains(t, TotalsMarkdown(&dto.TotalsResponse{}, m), "0 movimientos.")
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\|b c`, escape("a|b\nc"))
}
