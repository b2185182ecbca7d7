package records

import (
	"context"
	"strings"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
)

// GetConfig devuelve la configuración financiera del usuario.
func (s *Service) GetConfig(ctx context.Context, userID string) (*dto.ConfigResponse, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toConfigResponse(snap.Config), nil
}

// SaveConfig reemplaza la configuración financiera. Fecha de inicio vacía = hoy.
func (s *Service) SaveConfig(ctx context.Context, userID string, in dto.ConfigRequest) (*dto.ConfigResponse, error) {
	capital, err := parseAmount("initial_capital", in.InitialCapital)
	if err != nil {
		return nil, err
	}
	start, err := normalizeDate("start_date", in.StartDate, s.calc.Today())
	if err != nil {
		return nil, err
	}
	cfg := entity.FinancialConfig{
		InitialCapital: capital,
		StartDate:      start,
		Notes:          strings.TrimSpace(in.Notes),
	}
	err = s.mutate(ctx, userID, func(snap *entity.Snapshot) error {
		snap.Config = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("initial_capital", capital.String()).Str("start_date", start).Msg("configuración guardada")
	return toConfigResponse(cfg), nil
}

func toConfigResponse(c entity.FinancialConfig) *dto.ConfigResponse {
	return &dto.ConfigResponse{
		InitialCapital: c.InitialCapital,
		StartDate:      c.StartDate,
		Notes:          c.Notes,
	}
}
