package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

// InventoryItemRepository define el puerto de persistencia para los artículos
// de inventario (DIP).
type InventoryItemRepository interface {
	// Upsert escribe el artículo bajo su clave canónica. El patch de stock se
	// mezcla de forma dispersa: solo las ubicaciones tocadas cambian, el resto
	// conserva su valor previo. Devuelve el documento almacenado.
	Upsert(ctx context.Context, item *entity.InventoryItem, patch stock.Patch) (*entity.InventoryItem, error)

	// GetByName busca el artículo único con ese nombre; nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.InventoryItem, error)

	// SetLocationStock fija la cantidad de una única ubicación sin tocar las demás.
	SetLocationStock(ctx context.Context, id, location string, qty decimal.Decimal) error

	// PricesByIDs devuelve el precio unitario actual de los artículos indicados,
	// indexado por id. Los ids desconocidos simplemente no aparecen.
	PricesByIDs(ctx context.Context, ids []string) (map[string]decimal.Decimal, error)

	// List devuelve todos los artículos ordenados por nombre ascendente.
	List(ctx context.Context) ([]*entity.InventoryItem, error)

	// Delete elimina por id externo. No es error que no exista.
	Delete(ctx context.Context, id string) error
}
