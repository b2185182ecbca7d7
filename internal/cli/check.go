package cli

import (
	"fmt"
	"time"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/ledger"
)

// Issue inconsistencia encontrada en los registros.
type Issue struct {
	Record  string
	Problem string
}

// Check revisa lo que la API impide al crear registros pero un respaldo puede traer igual.
func Check(s entity.Snapshot) []Issue {
	var issues []Issue
	add := func(record, format string, args ...any) {
		issues = append(issues, Issue{Record: record, Problem: fmt.Sprintf(format, args...)})
	}

	if !validDate(s.Config.StartDate) {
		add("config", "fecha de inicio inválida %q", s.Config.StartDate)
	}

	seen := make(map[string]bool, len(s.Products))
	for _, p := range s.Products {
		if seen[p.ID] {
			add(p.ID, "ID de producto repetido; se usa el primero")
		}
		seen[p.ID] = true
		if !validDate(p.PurchaseDate) {
			add(p.ID, "fecha de compra inválida %q", p.PurchaseDate)
		}
		if p.QuantityPurchased <= 0 {
			add(p.ID, "cantidad comprada %d", p.QuantityPurchased)
		}
		if !p.UnitPurchasePrice.IsPositive() {
			add(p.ID, "precio de compra %s", p.UnitPurchasePrice.String())
		}
	}

	for _, v := range s.Sales {
		if !seen[v.ProductID] {
			add(v.ID, "venta de un producto inexistente %q", v.ProductID)
		}
		if !validDate(v.SaleDate) {
			add(v.ID, "fecha de venta inválida %q", v.SaleDate)
		}
		if v.QuantitySold <= 0 {
			add(v.ID, "cantidad vendida %d", v.QuantitySold)
		}
	}

	stock := ledger.StockByProduct(s)
	for _, p := range s.Products {
		if n, ok := stock[p.ID]; ok && n < 0 {
			add(p.ID, "stock negativo (%d)", n)
			delete(stock, p.ID)
		}
	}

	for _, a := range s.Adjustments {
		if !validDate(a.Date) {
			add(a.ID, "fecha de ajuste inválida %q", a.Date)
		}
		if a.Amount.IsZero() {
			add(a.ID, "ajuste con monto cero")
		}
	}
	return issues
}

func validDate(s string) bool {
	_, err := time.Parse(entity.DateFormat, s)
	return err == nil
}
