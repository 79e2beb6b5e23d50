package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/repository"
	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre
// PostgreSQL. El mapa de stock vive en una columna jsonb; el merge disperso se
// delega al operador || de jsonb, que solo reemplaza las claves tocadas.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `id, name, category, barcode, price_per_unit, stock_by_location, created_at, updated_at`

// Upsert inserta o actualiza el artículo bajo su clave canónica. El patch se
// serializa con solo las ubicaciones tocadas y se concatena sobre el jsonb
// existente; un patch vacío deja el mapa intacto.
func (r *InventoryItemRepo) Upsert(ctx context.Context, item *entity.InventoryItem, patch stock.Patch) (*entity.InventoryItem, error) {
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("serializar patch de stock: %w", err)
	}
	if patch == nil {
		patchJSON = []byte(`{}`)
	}

	query := `
		INSERT INTO inventory_items (id, name, category, barcode, price_per_unit, stock_by_location)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			barcode = EXCLUDED.barcode,
			price_per_unit = EXCLUDED.price_per_unit,
			stock_by_location = COALESCE(inventory_items.stock_by_location, '{}'::jsonb) || $6::jsonb,
			updated_at = now()
		RETURNING ` + itemColumns

	stored, err := scanItem(r.q.QueryRow(ctx, query,
		item.ID, item.Name, item.Category, item.Barcode, item.PricePerUnit, patchJSON,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert inventory item: %w", err)
	}
	return stored, nil
}

// GetByName busca el artículo único con ese nombre; nil si no existe.
func (r *InventoryItemRepo) GetByName(ctx context.Context, name string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE name = $1`
	item, err := scanItem(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by name: %w", err)
	}
	return item, nil
}

// SetLocationStock fija la cantidad de una única ubicación vía jsonb_set; el
// resto del mapa no se toca.
func (r *InventoryItemRepo) SetLocationStock(ctx context.Context, id, location string, qty decimal.Decimal) error {
	query := `
		UPDATE inventory_items
		SET stock_by_location = jsonb_set(COALESCE(stock_by_location, '{}'::jsonb), ARRAY[$2], to_jsonb($3::numeric), true),
		    updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, location, qty)
	if err != nil {
		return fmt.Errorf("set location stock: %w", err)
	}
	return nil
}

// PricesByIDs devuelve precio unitario por id para los artículos existentes.
func (r *InventoryItemRepo) PricesByIDs(ctx context.Context, ids []string) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, price_per_unit FROM inventory_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("prices by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

// List devuelve todos los artículos ordenados por nombre.
func (r *InventoryItemRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete elimina por id. No distingue si existía.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Barcode, &it.PricePerUnit,
		&it.StockByLocation, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if it.StockByLocation == nil {
		it.StockByLocation = stock.ByLocation{}
	}
	return &it, nil
}
