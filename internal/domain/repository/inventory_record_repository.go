package repository

import (
	"context"

	"github.com/jhoicas/barstock-api/internal/domain/entity"
)

// InventoryRecordRepository define el puerto de persistencia para registros históricos.
type InventoryRecordRepository interface {
	// Upsert escribe el registro bajo su clave canónica y devuelve el documento almacenado.
	Upsert(ctx context.Context, record *entity.InventoryRecord) (*entity.InventoryRecord, error)

	// GetByID devuelve el registro o domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error)

	// List devuelve todos los registros ordenados por fecha descendente.
	List(ctx context.Context) ([]*entity.InventoryRecord, error)

	// Delete elimina un registro; devuelve domain.ErrNotFound si no existía.
	Delete(ctx context.Context, id string) error

	// DeleteAll vacía la colección de registros históricos.
	DeleteAll(ctx context.Context) error
}
