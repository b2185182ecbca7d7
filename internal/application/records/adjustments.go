package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
)

// SaveAdjustment crea un ajuste (ID vacío) o reemplaza el existente con ese ID.
// El monto no puede ser cero y la descripción es obligatoria.
func (s *Service) SaveAdjustment(ctx context.Context, userID string, in dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: amount no puede ser cero", domain.ErrInvalidInput)
	}
	desc, err := requireText("description", in.Description)
	if err != nil {
		return nil, err
	}
	date, err := normalizeDate("date", in.Date, s.calc.Today())
	if err != nil {
		return nil, err
	}

	adj := entity.CapitalAdjustment{
		ID:          strings.TrimSpace(in.ID),
		Date:        date,
		Amount:      amount,
		Description: desc,
	}
	created := adj.ID == ""
	if created {
		adj.ID = newID(prefixAdjustment)
	}
	err = s.mutate(ctx, userID, func(snap *entity.Snapshot) error {
		if created {
			snap.Adjustments = append(snap.Adjustments, adj)
			return nil
		}
		for i := range snap.Adjustments {
			if snap.Adjustments[i].ID == adj.ID {
				snap.Adjustments[i] = adj
				return nil
			}
		}
		return fmt.Errorf("%w: ajuste %s", domain.ErrNotFound, adj.ID)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("user_id", userID).
		Str("adjustment_id", adj.ID).
		Bool("created", created).
		Str("amount", amount.String()).
		Msg("ajuste de capital guardado")
	return toAdjustmentResponse(adj), nil
}

// DeleteAdjustment elimina un ajuste por ID.
func (s *Service) DeleteAdjustment(ctx context.Context, userID, id string) error {
	err := s.mutate(ctx, userID, func(snap *entity.Snapshot) error {
		for i := range snap.Adjustments {
			if snap.Adjustments[i].ID == id {
				snap.Adjustments = append(snap.Adjustments[:i], snap.Adjustments[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: ajuste %s", domain.ErrNotFound, id)
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("adjustment_id", id).Msg("ajuste de capital eliminado")
	return nil
}

// ListAdjustments lista los ajustes en el orden en que fueron creados.
func (s *Service) ListAdjustments(ctx context.Context, userID string) ([]dto.AdjustmentResponse, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(snap.Adjustments))
	for _, a := range snap.Adjustments {
		items = append(items, *toAdjustmentResponse(a))
	}
	return items, nil
}

func toAdjustmentResponse(a entity.CapitalAdjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:          a.ID,
		Date:        a.Date,
		Amount:      a.Amount,
		Description: a.Description,
	}
}
