package ledger

import (
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ComputeTotals recorre los movimientos en orden acumulando capital, compras y ventas,
// y valoriza el stock restante al costo de compra.
// Lucro = capital final - capital inicial (equivale a la suma de todos los movimientos).
func (c *Calculator) ComputeTotals(s entity.Snapshot) entity.Totals {
	movs := c.BuildMovements(s)

	capital := s.Config.InitialCapital
	purchases := decimal.Zero
	sales := decimal.Zero
	for _, m := range movs {
		switch m.Type {
		case entity.MovementPurchase:
			purchases = purchases.Add(m.Amount.Abs())
		case entity.MovementSale:
			sales = sales.Add(m.Amount.Abs())
		}
		capital = capital.Add(m.Amount)
	}

	stock := StockByProduct(s)
	inventory := decimal.Zero
	for _, p := range s.Products {
		inventory = inventory.Add(p.UnitPurchasePrice.Mul(decimal.NewFromInt(int64(stock[p.ID]))))
	}

	return entity.Totals{
		Movements:      movs,
		CurrentCapital: capital,
		TotalPurchases: purchases,
		TotalSales:     sales,
		Profit:         capital.Sub(s.Config.InitialCapital),
		InventoryValue: inventory,
	}
}
