// Package cache decora un SnapshotRepository con una caché en memoria (go-cache).
// Solo se cachean los registros; los totales se recalculan siempre.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/repository"
)

// CleanupInterval frecuencia de purga de entradas vencidas.
const CleanupInterval = 10 * time.Minute

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository lectura a través de la caché y escritura directa al repositorio interno.
type SnapshotRepository struct {
	next  repository.SnapshotRepository
	cache *gocache.Cache
}

// NewSnapshotRepository envuelve next con una caché de duración ttl.
func NewSnapshotRepository(next repository.SnapshotRepository, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: gocache.New(ttl, CleanupInterval)}
}

// Get sirve desde la caché si hay entrada vigente. Los usuarios sin registros no se cachean.
func (r *SnapshotRepository) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	if v, ok := r.cache.Get(userID); ok {
		s := v.(entity.Snapshot).Clone()
		return &s, nil
	}
	s, err := r.next.Get(ctx, userID)
	if err != nil || s == nil {
		return s, err
	}
	r.cache.SetDefault(userID, s.Clone())
	return s, nil
}

// Put escribe en el repositorio interno y, si tuvo éxito, actualiza la caché.
func (r *SnapshotRepository) Put(ctx context.Context, userID string, s *entity.Snapshot) error {
	if err := r.next.Put(ctx, userID, s); err != nil {
		r.cache.Delete(userID)
		return err
	}
	r.cache.SetDefault(userID, s.Clone())
	return nil
}

// Invalidate descarta la entrada de un usuario.
func (r *SnapshotRepository) Invalidate(userID string) {
	r.cache.Delete(userID)
}
