package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/infrastructure/memory"
)

// countingRepo cuenta las lecturas al repositorio interno.
type countingRepo struct {
	*memory.SnapshotRepository
	gets   int
	putErr error
}

func (r *countingRepo) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	r.gets++
	return r.SnapshotRepository.Get(ctx, userID)
}

func (r *countingRepo) Put(ctx context.Context, userID string, s *entity.Snapshot) error {
	if r.putErr != nil {
		return r.putErr
	}
	return r.SnapshotRepository.Put(ctx, userID, s)
}

func newCounting() *countingRepo {
	return &countingRepo{SnapshotRepository: memory.NewSnapshotRepository()}
}

func TestCache_GetSirveDesdeCache(t *testing.T) {
	inner := newCounting()
	repo := NewSnapshotRepository(inner, time.Minute)
	ctx := context.Background()
	snap := entity.DefaultSnapshot("2024-01-01")
	require.NoError(t, repo.Put(ctx, "u1", &snap))

	for i := 0; i < 3; i++ {
		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
	}
	assert.Equal(t, 0, inner.gets)
}

func TestCache_NoCacheaUsuarioInexistente(t *testing.T) {
	inner := newCounting()
	repo := NewSnapshotRepository(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := repo.Get(ctx, "nadie")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, 2, inner.gets)
}

func TestCache_CopiasIndependientes(t *testing.T) {
	repo := NewSnapshotRepository(newCounting(), time.Minute)
	ctx := context.Background()
	snap := entity.DefaultSnapshot("2024-01-01")
	snap.Products = append(snap.Products, entity.Product{ID: "p1", Name: "A"})
	require.NoError(t, repo.Put(ctx, "u1", &snap))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	got.Products[0].Name = "mutado"

	again, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Products[0].Name)
}

func TestCache_ErrorEnPutInvalida(t *testing.T) {
	inner := newCounting()
	repo := NewSnapshotRepository(inner, time.Minute)
	ctx := context.Background()
	snap := entity.DefaultSnapshot("2024-01-01")
	require.NoError(t, repo.Put(ctx, "u1", &snap))

	boom := errors.New("boom")
	inner.putErr = boom
	snap.Config.Notes = "nuevo"
	assert.ErrorIs(t, repo.Put(ctx, "u1", &snap), boom)

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.Config.Notes)
	assert.Equal(t, 1, inner.gets)
}

func TestCache_Invalidate(t *testing.T) {
	inner := newCounting()
	repo := NewSnapshotRepository(inner, time.Minute)
	ctx := context.Background()
	snap := entity.DefaultSnapshot("2024-01-01")
	require.NoError(t, repo.Put(ctx, "u1", &snap))

	repo.Invalidate("u1")
	_, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.gets)
}
