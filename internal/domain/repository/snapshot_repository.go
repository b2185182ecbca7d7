package repository

import (
	"context"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia de los registros de un usuario (DIP).
// Get devuelve (nil, nil) si el usuario aún no tiene datos guardados.
// Put reemplaza por completo el snapshot del usuario.
type SnapshotRepository interface {
	Get(ctx context.Context, userID string) (*entity.Snapshot, error)
	Put(ctx context.Context, userID string, snapshot *entity.Snapshot) error
}
