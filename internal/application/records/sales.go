package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
)

// missingProductName nombre mostrado cuando la venta apunta a un producto inexistente.
const missingProductName = "N/A"

// AddSale registra una venta. El producto debe existir y tener stock suficiente;
// la verificación ocurre bajo el lock del usuario para que dos ventas no consuman el mismo stock.
func (s *Service) AddSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	productID, err := requireText("product_id", in.ProductID)
	if err != nil {
		return nil, err
	}
	qty, err := parseQuantity("quantity_sold", in.QuantitySold)
	if err != nil {
		return nil, err
	}
	price, err := parsePositiveAmount("unit_sale_price", in.UnitSalePrice)
	if err != nil {
		return nil, err
	}
	date, err := normalizeDate("sale_date", in.SaleDate, s.calc.Today())
	if err != nil {
		return nil, err
	}

	sale := entity.Sale{
		ID:            newID(prefixSale),
		ProductID:     productID,
		SaleDate:      date,
		QuantitySold:  qty,
		UnitSalePrice: price,
		Customer:      strings.TrimSpace(in.Customer),
		Notes:         strings.TrimSpace(in.Notes),
	}
	var productName string
	err = s.mutate(ctx, userID, func(snap *entity.Snapshot) error {
		product, ok := snap.FindProduct(productID)
		if !ok {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}
		stock := s.calc.StockOf(productID, *snap)
		if qty > stock {
			return fmt.Errorf("%w: cantidad (%d) mayor que el stock (%d)", domain.ErrInsufficientStock, qty, stock)
		}
		productName = product.Name
		snap.Sales = append(snap.Sales, sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("user_id", userID).
		Str("sale_id", sale.ID).
		Str("product_id", productID).
		Int("quantity", qty).
		Str("unit_price", price.String()).
		Msg("venta registrada")
	return toSaleResponse(sale, productName), nil
}

// ListSales lista las ventas con el nombre del producto ("N/A" si la referencia quedó colgante).
func (s *Service) ListSales(ctx context.Context, userID string) ([]dto.SaleResponse, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(snap.Products))
	for _, p := range snap.Products {
		if _, ok := names[p.ID]; !ok {
			names[p.ID] = p.Name
		}
	}
	items := make([]dto.SaleResponse, 0, len(snap.Sales))
	for _, v := range snap.Sales {
		name, ok := names[v.ProductID]
		if !ok {
			name = missingProductName
		}
		items = append(items, *toSaleResponse(v, name))
	}
	return items, nil
}

func toSaleResponse(v entity.Sale, productName string) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            v.ID,
		ProductID:     v.ProductID,
		ProductName:   productName,
		SaleDate:      v.SaleDate,
		QuantitySold:  v.QuantitySold,
		UnitSalePrice: v.UnitSalePrice,
		Total:         v.SaleTotal(),
		Customer:      v.Customer,
		Notes:         v.Notes,
	}
}
