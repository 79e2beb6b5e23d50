package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/identity"
	"github.com/jhoicas/barstock-api/internal/domain/repository"
	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

// InventoryUseCase orquesta las operaciones sobre artículos de inventario:
// upsert idempotente con merge disperso de stock, reconciliación masiva sobre
// Almacén y consultas.
type InventoryUseCase struct {
	repo repository.InventoryItemRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryItemRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List devuelve el inventario completo ordenado por nombre.
func (uc *InventoryUseCase) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return uc.repo.List(ctx)
}

// Upsert guarda o actualiza un artículo. El id externo se resuelve una sola
// vez a la clave canónica, de modo que crear y re-enviar son la misma
// operación. Las ubicaciones ausentes del body conservan su stock anterior.
func (uc *InventoryUseCase) Upsert(ctx context.Context, req dto.UpsertItemRequest) (*entity.InventoryItem, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.InventoryItem{
		ID:           identity.Resolve(req.ID),
		Name:         req.Name,
		Category:     req.Category,
		Barcode:      req.Barcode,
		PricePerUnit: decimal.NewFromFloat(req.PricePerUnit),
	}
	stored, err := uc.repo.Upsert(ctx, item, stock.NewPatch(req.Stock))
	if err != nil {
		return nil, fmt.Errorf("upsert artículo: %w", err)
	}
	return stored, nil
}

// BulkUpdateStock procesa un lote de ajustes {name, stock, mode} sobre la
// ubicación Almacén. Las entradas se resuelven de forma concurrente e
// independiente: un nombre desconocido o un fallo puntual no aborta el lote.
// Devuelve el número de entradas procesadas.
func (uc *InventoryUseCase) BulkUpdateStock(ctx context.Context, updates []dto.BulkStockUpdate) int {
	var wg sync.WaitGroup
	for _, u := range updates {
		wg.Add(1)
		go func(u dto.BulkStockUpdate) {
			defer wg.Done()
			if err := uc.applyStockUpdate(ctx, u); err != nil {
				log.Warn().Err(err).Str("name", u.Name).Msg("entrada de actualización masiva omitida")
			}
		}(u)
	}
	wg.Wait()
	return len(updates)
}

func (uc *InventoryUseCase) applyStockUpdate(ctx context.Context, u dto.BulkStockUpdate) error {
	item, err := uc.repo.GetByName(ctx, u.Name)
	if err != nil {
		return fmt.Errorf("buscar artículo: %w", err)
	}
	if item == nil {
		// No encontrado no es un error del lote.
		return nil
	}

	current := item.StockByLocation.Get(stock.AlmacenLocation)
	next := stock.Reconcile(current, decimal.NewFromFloat(u.Stock), stock.Mode(u.Mode))

	if err := uc.repo.SetLocationStock(ctx, item.ID, stock.AlmacenLocation, next); err != nil {
		return fmt.Errorf("actualizar stock en %s: %w", stock.AlmacenLocation, err)
	}
	return nil
}

// Delete elimina un artículo por su id externo.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}
