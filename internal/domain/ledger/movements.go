package ledger

import (
	"fmt"
	"sort"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
)

const (
	unknownProductName           = "Producto"
	defaultAdjustmentDescription = "Ajuste de capital"
)

// BuildMovements genera un movimiento por cada compra, venta y ajuste, ordenados por fecha.
//
// Compras y ventas con total cero se descartan. El orden es estable: en la misma fecha
// quedan primero las compras, luego las ventas y al final los ajustes.
func (c *Calculator) BuildMovements(s entity.Snapshot) []entity.Movement {
	movs := make([]entity.Movement, 0, len(s.Products)+len(s.Sales)+len(s.Adjustments))

	names := make(map[string]string, len(s.Products))
	for _, p := range s.Products {
		if _, seen := names[p.ID]; !seen {
			names[p.ID] = p.Name
		}
		total := p.PurchaseTotal()
		if !total.IsPositive() {
			continue
		}
		movs = append(movs, entity.Movement{
			Type:        entity.MovementPurchase,
			Date:        c.dateOrToday(p.PurchaseDate),
			Amount:      total.Neg(),
			Description: fmt.Sprintf("Compra de %s (%d x %s)", p.Name, p.QuantityPurchased, c.money.Format(p.UnitPurchasePrice)),
		})
	}

	for _, v := range s.Sales {
		total := v.SaleTotal()
		if !total.IsPositive() {
			continue
		}
		name := names[v.ProductID]
		if name == "" {
			name = unknownProductName
		}
		movs = append(movs, entity.Movement{
			Type:        entity.MovementSale,
			Date:        c.dateOrToday(v.SaleDate),
			Amount:      total,
			Description: fmt.Sprintf("Venta de %s (%d x %s)", name, v.QuantitySold, c.money.Format(v.UnitSalePrice)),
		})
	}

	for _, a := range s.Adjustments {
		desc := a.Description
		if desc == "" {
			desc = defaultAdjustmentDescription
		}
		movs = append(movs, entity.Movement{
			Type:        entity.MovementAdjustment,
			Date:        c.dateOrToday(a.Date),
			Amount:      a.Amount,
			Description: desc,
		})
	}

	sort.SliceStable(movs, func(i, j int) bool { return movs[i].Date < movs[j].Date })
	return movs
}
