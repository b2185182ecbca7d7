// Package records implementa el almacén de registros: valida las entradas del usuario,
// genera identificadores y persiste el snapshot completo por usuario.
package records

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/finanzas-reventa/internal/domain"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/ledger"
	"github.com/jhoicas/finanzas-reventa/internal/domain/repository"
	"github.com/jhoicas/finanzas-reventa/pkg/logger"
)

// Prefijos de identificadores por tipo de registro.
const (
	prefixProduct    = "p_"
	prefixSale       = "v_"
	prefixAdjustment = "a_"
)

// Service casos de uso de escritura y lectura de registros.
// Las mutaciones de un mismo usuario se serializan (leer-modificar-escribir sobre el snapshot).
type Service struct {
	repo  repository.SnapshotRepository
	calc  *ledger.Calculator
	log   *logger.Logger
	locks userLocks
}

// NewService construye el servicio.
func NewService(repo repository.SnapshotRepository, calc *ledger.Calculator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, calc: calc, log: log.Component("records")}
}

// Snapshot devuelve los registros del usuario, o los datos iniciales si todavía no tiene.
func (s *Service) Snapshot(ctx context.Context, userID string) (entity.Snapshot, error) {
	if strings.TrimSpace(userID) == "" {
		return entity.Snapshot{}, fmt.Errorf("%w: usuario requerido", domain.ErrInvalidInput)
	}
	snap, err := s.repo.Get(ctx, userID)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("cargar registros: %w", err)
	}
	if snap == nil {
		return entity.DefaultSnapshot(s.calc.Today()), nil
	}
	return snap.Clone(), nil
}

// mutate carga el snapshot, aplica fn y lo persiste bajo el lock del usuario.
// Si fn devuelve error no se escribe nada.
func (s *Service) mutate(ctx context.Context, userID string, fn func(snap *entity.Snapshot) error) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(&snap); err != nil {
		return err
	}
	if err := s.repo.Put(ctx, userID, &snap); err != nil {
		return fmt.Errorf("guardar registros: %w", err)
	}
	return nil
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

// userLocks mutex por usuario.
type userLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *userLocks) lock(userID string) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	m, ok := l.m[userID]
	if !ok {
		m = &sync.Mutex{}
		l.m[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
