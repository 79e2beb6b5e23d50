package repository

import (
	"context"

	"github.com/jhoicas/barstock-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para pedidos.
type PurchaseOrderRepository interface {
	// Upsert escribe el pedido bajo su clave canónica y devuelve el documento almacenado.
	Upsert(ctx context.Context, order *entity.PurchaseOrder) (*entity.PurchaseOrder, error)

	// List devuelve todos los pedidos ordenados por fecha de pedido descendente.
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)

	// Delete elimina por id. No es error que no exista.
	Delete(ctx context.Context, id string) error
}
