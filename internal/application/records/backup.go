package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/pkg/numeric"
)

// Export devuelve el respaldo completo del usuario.
func (s *Service) Export(ctx context.Context, userID string) (*dto.Backup, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.calc.Now().UTC()
	b := &dto.Backup{
		Version:    dto.BackupVersion,
		ExportedAt: &now,
		Config: &dto.BackupConfig{
			InitialCapital: numeric.L(snap.Config.InitialCapital),
			StartDate:      snap.Config.StartDate,
			Notes:          snap.Config.Notes,
		},
		Products:    make([]dto.BackupProduct, 0, len(snap.Products)),
		Sales:       make([]dto.BackupSale, 0, len(snap.Sales)),
		Adjustments: make([]dto.BackupAdjustment, 0, len(snap.Adjustments)),
	}
	for _, p := range snap.Products {
		b.Products = append(b.Products, dto.BackupProduct{
			ID:                p.ID,
			Name:              p.Name,
			Category:          p.Category,
			PurchaseDate:      p.PurchaseDate,
			UnitPurchasePrice: numeric.L(p.UnitPurchasePrice),
			QuantityPurchased: numeric.L(intDecimal(p.QuantityPurchased)),
			Supplier:          p.Supplier,
			Notes:             p.Notes,
		})
	}
	for _, v := range snap.Sales {
		b.Sales = append(b.Sales, dto.BackupSale{
			ID:            v.ID,
			ProductID:     v.ProductID,
			SaleDate:      v.SaleDate,
			QuantitySold:  numeric.L(intDecimal(v.QuantitySold)),
			UnitSalePrice: numeric.L(v.UnitSalePrice),
			Customer:      v.Customer,
			Notes:         v.Notes,
		})
	}
	for _, a := range snap.Adjustments {
		b.Adjustments = append(b.Adjustments, dto.BackupAdjustment{
			ID:          a.ID,
			Date:        a.Date,
			Amount:      numeric.L(a.Amount),
			Description: a.Description,
		})
	}
	return b, nil
}

// Import reemplaza todos los registros del usuario por los del respaldo.
// El respaldo debe traer config y products; sales y adjustments pueden faltar.
// Los registros sin ID reciben uno nuevo; el resto de los campos se toma tal cual.
func (s *Service) Import(ctx context.Context, userID string, b *dto.Backup) (*entity.Snapshot, error) {
	if b == nil || b.Config == nil || b.Products == nil {
		return nil, fmt.Errorf("%w: faltan config o products", domain.ErrInvalidBackup)
	}
	if b.Version > dto.BackupVersion {
		return nil, fmt.Errorf("%w: versión %d no soportada", domain.ErrInvalidBackup, b.Version)
	}

	snap := fromBackup(b)
	err := s.mutate(ctx, userID, func(cur *entity.Snapshot) error {
		*cur = snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("user_id", userID).
		Int("products", len(snap.Products)).
		Int("sales", len(snap.Sales)).
		Int("adjustments", len(snap.Adjustments)).
		Msg("respaldo importado")
	out := snap.Clone()
	return &out, nil
}

func fromBackup(b *dto.Backup) entity.Snapshot {
	snap := entity.Snapshot{
		Config: entity.FinancialConfig{
			InitialCapital: b.Config.InitialCapital.Decimal,
			StartDate:      strings.TrimSpace(b.Config.StartDate),
			Notes:          b.Config.Notes,
		},
		Products:    make([]entity.Product, 0, len(b.Products)),
		Sales:       make([]entity.Sale, 0, len(b.Sales)),
		Adjustments: make([]entity.CapitalAdjustment, 0, len(b.Adjustments)),
	}
	for _, p := range b.Products {
		snap.Products = append(snap.Products, entity.Product{
			ID:                idOrNew(p.ID, prefixProduct),
			Name:              p.Name,
			Category:          p.Category,
			PurchaseDate:      strings.TrimSpace(p.PurchaseDate),
			UnitPurchasePrice: p.UnitPurchasePrice.Decimal,
			QuantityPurchased: p.QuantityPurchased.Int(),
			Supplier:          p.Supplier,
			Notes:             p.Notes,
		})
	}
	for _, v := range b.Sales {
		snap.Sales = append(snap.Sales, entity.Sale{
			ID:            idOrNew(v.ID, prefixSale),
			ProductID:     v.ProductID,
			SaleDate:      strings.TrimSpace(v.SaleDate),
			QuantitySold:  v.QuantitySold.Int(),
			UnitSalePrice: v.UnitSalePrice.Decimal,
			Customer:      v.Customer,
			Notes:         v.Notes,
		})
	}
	for _, a := range b.Adjustments {
		snap.Adjustments = append(snap.Adjustments, entity.CapitalAdjustment{
			ID:          idOrNew(a.ID, prefixAdjustment),
			Date:        strings.TrimSpace(a.Date),
			Amount:      a.Amount.Decimal,
			Description: a.Description,
		})
	}
	return snap
}

func idOrNew(id, prefix string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return newID(prefix)
}
