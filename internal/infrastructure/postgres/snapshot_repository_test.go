package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/pkg/config"
)

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func newTestRepo(t *testing.T) *SnapshotRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, RunMigrations(pool))
	return NewSnapshotRepository(pool, NewTxRunner(pool))
}

func TestSnapshotRepo_GetInexistente(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.Get(context.Background(), "u_"+uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotRepo_PutReemplazaYConservaOrden(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := "u_" + uuid.NewString()
	d := decimal.RequireFromString

	snap := entity.Snapshot{
		Config: entity.FinancialConfig{InitialCapital: d("1000.50"), StartDate: "2024-01-01"},
		Products: []entity.Product{
			{ID: "p_2", Name: "B", PurchaseDate: "2024-01-02", UnitPurchasePrice: d("30"), QuantityPurchased: 2},
			{ID: "p_1", Name: "A", PurchaseDate: "2024-01-01", UnitPurchasePrice: d("50.25"), QuantityPurchased: 10},
		},
		Sales:       []entity.Sale{{ID: "v_1", ProductID: "p_1", SaleDate: "2024-02-01", QuantitySold: 4, UnitSalePrice: d("80")}},
		Adjustments: []entity.CapitalAdjustment{{ID: "a_1", Date: "2024-03-01", Amount: d("-20"), Description: "retiro"}},
	}
	require.NoError(t, repo.Put(ctx, userID, &snap))

	got, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, d("1000.50").Equal(got.Config.InitialCapital))
	require.Len(t, got.Products, 2)
	assert.Equal(t, "p_2", got.Products[0].ID)
	assert.True(t, d("50.25").Equal(got.Products[1].UnitPurchasePrice))
	require.Len(t, got.Sales, 1)
	require.Len(t, got.Adjustments, 1)

	snap.Sales = nil
	snap.Adjustments = nil
	require.NoError(t, repo.Put(ctx, userID, &snap))
	got, err = repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, got.Sales)
	assert.Empty(t, got.Adjustments)
	assert.Len(t, got.Products, 2)
}
