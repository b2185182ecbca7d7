// Package pdf implementa el resumen financiero en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + usuario     │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Capital inicial / actual / Compras / Ventas / ...    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTOS: Producto | Costo | Ventas | Ganancia | Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MOVIMIENTOS: Fecha | Tipo | Descripción | Monto            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// MoneyFormatter formatea montos para el documento.
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa export.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	money MoneyFormatter
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(money MoneyFormatter) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{money: money}
}

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(_ context.Context, data export.SummaryData) ([]byte, error) {
	if data.Totals == nil {
		return nil, fmt.Errorf("pdf: faltan los totales")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRows(data.Totals)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("PRODUCTOS"))
	m.AddRows(productHeaderRow())
	m.AddRows(g.productRows(data.Products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("MOVIMIENTOS"))
	m.AddRows(movementHeaderRow())
	m.AddRows(g.movementRows(data.Totals.Movements)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y usuario (izq), fecha de generación (der).
func headerRow(data export.SummaryData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(nonEmpty(data.Title, "Resumen financiero"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Usuario: "+data.UserID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("RESUMEN FINANCIERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// kpiRows: dos filas de tres indicadores.
func (g *MarotoPDFGenerator) kpiRows(t *dto.TotalsResponse) []core.Row {
	kpi := func(label string, value decimal.Decimal) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(g.money.Format(value), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 5, Color: amountColor(value),
			}),
		)
	}
	return []core.Row{
		row.New(14).Add(
			kpi("Capital inicial ("+t.StartDate+")", t.InitialCapital),
			kpi("Capital actual", t.CurrentCapital),
			kpi("Valor del inventario", t.InventoryValue),
		),
		row.New(14).Add(
			kpi("Total compras", t.TotalPurchases),
			kpi("Total ventas", t.TotalSales),
			col.New(4).Add(
				text.New("Ganancia / variación", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(fmt.Sprintf("%s (%s%%)", g.money.Format(t.Profit), t.VariationPct.StringFixed(2)), props.Text{
					Style: fontstyle.Bold, Size: 11, Top: 5, Color: amountColor(t.Profit),
				}),
			),
		),
	}
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func productHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Producto", 4, align.Left),
		headerCell("Costo", 2, align.Right),
		headerCell("Ventas", 2, align.Right),
		headerCell("Ganancia", 2, align.Right),
		headerCell("Stock", 1, align.Center),
		headerCell("Estado", 1, align.Center),
	)
}

// productRows: una fila por producto.
func (g *MarotoPDFGenerator) productRows(items []dto.ProductReportItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Sin productos registrados")}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.money.Format(it.TotalCost), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money.Format(it.TotalSales), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money.Format(it.Profit), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor(it.Profit),
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(it.Status, props.Text{Size: 7, Align: align.Center, Top: 1})),
		))
	}
	return rows
}

func movementHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Fecha", 2, align.Left),
		headerCell("Tipo", 2, align.Left),
		headerCell("Descripción", 5, align.Left),
		headerCell("Monto", 3, align.Right),
	)
}

// movementRows: una fila por movimiento, en orden cronológico.
func (g *MarotoPDFGenerator) movementRows(ms []dto.MovementResponse) []core.Row {
	if len(ms) == 0 {
		return []core.Row{emptyRow("Sin movimientos")}
	}
	rows := make([]core.Row, 0, len(ms))
	for _, mv := range ms {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(mv.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(movementLabel(mv.Type), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(mv.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(g.money.Format(mv.Amount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor(mv.Amount),
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
	))
}

func movementLabel(t string) string {
	switch t {
	case "PURCHASE":
		return "Compra"
	case "SALE":
		return "Venta"
	case "ADJUSTMENT":
		return "Ajuste"
	default:
		return t
	}
}

func amountColor(d decimal.Decimal) *props.Color {
	if d.IsNegative() {
		return colorNegative
	}
	return nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
