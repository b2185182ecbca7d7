// Package memory implementa los repositorios en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository guarda un snapshot por usuario. Get y Put copian los slices.
type SnapshotRepository struct {
	mu   sync.RWMutex
	data map[string]entity.Snapshot
}

// NewSnapshotRepository construye el repositorio vacío.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{data: make(map[string]entity.Snapshot)}
}

// Get devuelve nil, nil si el usuario no tiene registros.
func (r *SnapshotRepository) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[userID]
	if !ok {
		return nil, nil
	}
	out := s.Clone()
	return &out, nil
}

// Put reemplaza los registros del usuario.
func (r *SnapshotRepository) Put(ctx context.Context, userID string, s *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID] = s.Clone()
	return nil
}
