package records

import (
	"context"
	"strings"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/ledger"
)

// AddProduct registra la compra de un producto. Exige nombre, cantidad entera > 0 y costo > 0.
func (s *Service) AddProduct(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	qty, err := parseQuantity("quantity_purchased", in.QuantityPurchased)
	if err != nil {
		return nil, err
	}
	price, err := parsePositiveAmount("unit_purchase_price", in.UnitPurchasePrice)
	if err != nil {
		return nil, err
	}
	date, err := normalizeDate("purchase_date", in.PurchaseDate, s.calc.Today())
	if err != nil {
		return nil, err
	}

	product := entity.Product{
		ID:                newID(prefixProduct),
		Name:              name,
		Category:          strings.TrimSpace(in.Category),
		PurchaseDate:      date,
		UnitPurchasePrice: price,
		QuantityPurchased: qty,
		Supplier:          strings.TrimSpace(in.Supplier),
		Notes:             strings.TrimSpace(in.Notes),
	}
	err = s.mutate(ctx, userID, func(snap *entity.Snapshot) error {
		snap.Products = append(snap.Products, product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("user_id", userID).
		Str("product_id", product.ID).
		Int("quantity", qty).
		Str("unit_price", price.String()).
		Msg("compra registrada")
	return toProductResponse(product, qty), nil
}

// ListProducts lista los productos con su stock actual (incluye los de total cero).
func (s *Service) ListProducts(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	stock := ledger.StockByProduct(snap)
	items := make([]dto.ProductResponse, 0, len(snap.Products))
	for _, p := range snap.Products {
		items = append(items, *toProductResponse(p, stock[p.ID]))
	}
	return items, nil
}

func toProductResponse(p entity.Product, stock int) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		PurchaseDate:      p.PurchaseDate,
		UnitPurchasePrice: p.UnitPurchasePrice,
		QuantityPurchased: p.QuantityPurchased,
		PurchaseTotal:     p.PurchaseTotal(),
		Stock:             stock,
		Supplier:          p.Supplier,
		Notes:             p.Notes,
	}
}
