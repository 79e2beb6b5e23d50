package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/repository"
)

var _ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)

// InventoryRecordRepo implementación del puerto InventoryRecordRepository
// sobre PostgreSQL. Las líneas del registro (snapshot o análisis) viven en
// jsonb; el registro es inmutable salvo upsert completo.
type InventoryRecordRepo struct {
	q Querier
}

// NewInventoryRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRecordRepository(q Querier) *InventoryRecordRepo {
	return &InventoryRecordRepo{q: q}
}

const recordColumns = `id, date, label, type, items, created_at, updated_at`

// Upsert inserta o actualiza el registro completo bajo su clave canónica.
func (r *InventoryRecordRepo) Upsert(ctx context.Context, record *entity.InventoryRecord) (*entity.InventoryRecord, error) {
	itemsJSON, err := json.Marshal(record.Items)
	if err != nil {
		return nil, fmt.Errorf("serializar líneas del registro: %w", err)
	}

	query := `
		INSERT INTO inventory_records (id, date, label, type, items)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			label = EXCLUDED.label,
			type = EXCLUDED.type,
			items = EXCLUDED.items,
			updated_at = now()
		RETURNING ` + recordColumns

	stored, err := scanRecord(r.q.QueryRow(ctx, query,
		record.ID, record.Date, record.Label, record.Type, itemsJSON,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert inventory record: %w", err)
	}
	return stored, nil
}

// GetByID devuelve el registro o domain.ErrNotFound.
func (r *InventoryRecordRepo) GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	record, err := scanRecord(r.q.QueryRow(ctx, `SELECT `+recordColumns+` FROM inventory_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return record, nil
}

// List devuelve todos los registros, el más reciente primero.
func (r *InventoryRecordRepo) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	rows, err := r.q.Query(ctx, `SELECT `+recordColumns+` FROM inventory_records ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		list = append(list, record)
	}
	return list, rows.Err()
}

// Delete elimina un registro individual; ErrNotFound si no existía.
func (r *InventoryRecordRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía el historial.
func (r *InventoryRecordRepo) DeleteAll(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_records`)
	if err != nil {
		return fmt.Errorf("delete all records: %w", err)
	}
	return nil
}

func scanRecord(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	var itemsJSON []byte
	err := row.Scan(&rec.ID, &rec.Date, &rec.Label, &rec.Type, &itemsJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &rec.Items); err != nil {
			return nil, fmt.Errorf("deserializar líneas: %w", err)
		}
	}
	return &rec, nil
}
