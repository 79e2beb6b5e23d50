package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL. Las líneas del pedido se guardan como jsonb: el pedido es un
// agregado que siempre se lee y escribe completo.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const orderColumns = `id, order_date, delivery_date, supplier_name, status, total_amount, items, created_at, updated_at`

// Upsert inserta o actualiza el pedido completo, incluidas las instantáneas
// de precio ya estampadas en las líneas.
func (r *PurchaseOrderRepo) Upsert(ctx context.Context, order *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("serializar líneas del pedido: %w", err)
	}

	query := `
		INSERT INTO purchase_orders (id, order_date, delivery_date, supplier_name, status, total_amount, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			order_date = EXCLUDED.order_date,
			delivery_date = EXCLUDED.delivery_date,
			supplier_name = EXCLUDED.supplier_name,
			status = EXCLUDED.status,
			total_amount = EXCLUDED.total_amount,
			items = EXCLUDED.items,
			updated_at = now()
		RETURNING ` + orderColumns

	stored, err := scanOrder(r.q.QueryRow(ctx, query,
		order.ID, order.OrderDate, order.DeliveryDate, order.SupplierName,
		order.Status, order.TotalAmount, itemsJSON,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert purchase order: %w", err)
	}
	return stored, nil
}

// List devuelve todos los pedidos, el más reciente primero.
func (r *PurchaseOrderRepo) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM purchase_orders ORDER BY order_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// Delete elimina por id. No distingue si existía.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var itemsJSON []byte
	err := row.Scan(&o.ID, &o.OrderDate, &o.DeliveryDate, &o.SupplierName,
		&o.Status, &o.TotalAmount, &itemsJSON, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("deserializar líneas: %w", err)
		}
	}
	return &o, nil
}
