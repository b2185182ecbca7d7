package ledger

import "github.com/jhoicas/finanzas-reventa/internal/domain/entity"

// SoldByProduct suma en una sola pasada las cantidades vendidas por producto.
func SoldByProduct(sales []entity.Sale) map[string]int {
	sold := make(map[string]int, len(sales))
	for _, s := range sales {
		sold[s.ProductID] += s.QuantitySold
	}
	return sold
}

// StockByProduct devuelve el stock de cada producto del snapshot en O(productos + ventas).
// Igual que StockOf, ante IDs repetidos vale el primer producto.
func StockByProduct(s entity.Snapshot) map[string]int {
	sold := SoldByProduct(s.Sales)
	stock := make(map[string]int, len(s.Products))
	for _, p := range s.Products {
		if _, seen := stock[p.ID]; seen {
			continue
		}
		stock[p.ID] = p.QuantityPurchased - sold[p.ID]
	}
	return stock
}

// StockOf devuelve cantidad comprada - cantidad vendida del producto.
// Un producto inexistente tiene stock 0. El resultado no se recorta: refleja lo que indiquen los datos.
func (c *Calculator) StockOf(productID string, s entity.Snapshot) int {
	p, ok := s.FindProduct(productID)
	if !ok {
		return 0
	}
	sold := 0
	for _, sale := range s.Sales {
		if sale.ProductID == productID {
			sold += sale.QuantitySold
		}
	}
	return p.QuantityPurchased - sold
}
