package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
)

func TestSnapshotRepository_GetInexistente(t *testing.T) {
	repo := NewSnapshotRepository()
	got, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotRepository_PutYGetCopian(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()
	snap := entity.DefaultSnapshot("2024-01-01")
	snap.Products = append(snap.Products, entity.Product{ID: "p1", Name: "A", QuantityPurchased: 2, UnitPurchasePrice: decimal.NewFromInt(5)})
	require.NoError(t, repo.Put(ctx, "u1", &snap))

	// mutar el original no afecta lo guardado
	snap.Products[0].Name = "cambiado"

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "A", got.Products[0].Name)

	got.Products[0].Name = "otro"
	again, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Products[0].Name)
}

func TestSnapshotRepository_UsuariosAislados(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()
	snap := entity.DefaultSnapshot("2024-01-01")
	require.NoError(t, repo.Put(ctx, "u1", &snap))

	got, err := repo.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotRepository_ContextoCancelado(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
}
