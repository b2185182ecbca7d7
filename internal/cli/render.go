package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
)

// MoneyFormatter formatea montos en las tablas.
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

// TotalsMarkdown resumen de totales.
func TotalsMarkdown(t *dto.TotalsResponse, m MoneyFormatter) string {
	var b strings.Builder
	b.WriteString("# Totales\n\n")
	b.WriteString("| Concepto | Monto |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Capital inicial (%s) | %s |\n", t.StartDate, m.Format(t.InitialCapital))
	fmt.Fprintf(&b, "| Total compras | %s |\n", m.Format(t.TotalPurchases))
	fmt.Fprintf(&b, "| Total ventas | %s |\n", m.Format(t.TotalSales))
	fmt.Fprintf(&b, "| Ganancia | %s |\n", m.Format(t.Profit))
	fmt.Fprintf(&b, "| Variación | %s%% |\n", t.VariationPct.StringFixed(2))
	fmt.Fprintf(&b, "| Valor del inventario | %s |\n", m.Format(t.InventoryValue))
	fmt.Fprintf(&b, "| **Capital actual** | **%s** |\n", m.Format(t.CurrentCapital))
	fmt.Fprintf(&b, "\n%d movimientos.\n", len(t.Movements))
	return b.String()
}

// MovementsMarkdown tabla de movimientos.
func MovementsMarkdown(ms []dto.MovementResponse, m MoneyFormatter) string {
	var b strings.Builder
	b.WriteString("# Movimientos\n\n")
	if len(ms) == 0 {
		b.WriteString("Sin movimientos.\n")
		return b.String()
	}
	b.WriteString("| Fecha | Tipo | Descripción | Monto |\n|---|---|---|---:|\n")
	for _, mv := range ms {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", mv.Date, mv.Type, escape(mv.Description), m.Format(mv.Amount))
	}
	return b.String()
}

// SeriesMarkdown capital después de cada movimiento.
func SeriesMarkdown(s *dto.SeriesResponse, m MoneyFormatter) string {
	var b strings.Builder
	b.WriteString("# Evolución del capital\n\n")
	b.WriteString("| # | Fecha | Capital |\n|---:|---|---:|\n")
	for i := range s.Labels {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i, s.Labels[i], m.Format(s.Values[i]))
	}
	return b.String()
}

// ReportMarkdown rentabilidad por producto.
func ReportMarkdown(items []dto.ProductReportItem, m MoneyFormatter) string {
	var b strings.Builder
	b.WriteString("# Rentabilidad por producto\n\n")
	if len(items) == 0 {
		b.WriteString("Sin productos.\n")
		return b.String()
	}
	b.WriteString("| Producto | Costo | Ventas | Ganancia | Margen | ROI | Stock | Estado |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|---:|---|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s%% | %s%% | %d | %s |\n",
			escape(it.Name), m.Format(it.TotalCost), m.Format(it.TotalSales), m.Format(it.Profit),
			it.MarginPct.StringFixed(2), it.ROIPct.StringFixed(2), it.Stock, it.Status)
	}
	return b.String()
}

// CheckMarkdown lista de problemas encontrados.
func CheckMarkdown(issues []Issue) string {
	var b strings.Builder
	b.WriteString("# Revisión del respaldo\n\n")
	if len(issues) == 0 {
		b.WriteString("Sin problemas.\n")
		return b.String()
	}
	for _, is := range issues {
		fmt.Fprintf(&b, "- **%s** %s\n", is.Record, escape(is.Problem))
	}
	return b.String()
}

// escape evita que un texto rompa la tabla markdown.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
