package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/application/usecase"
	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

func TestInventoryUpsert_SinNombre_EsInvalido(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newFakeItemRepo())

	_, err := uc.Upsert(context.Background(), dto.UpsertItemRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryUpsert_SinID_AcuñaUUID(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newFakeItemRepo())

	stored, err := uc.Upsert(context.Background(), dto.UpsertItemRequest{Name: "Mahou"})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(stored.ID)
	assert.NoError(t, parseErr, "un alta sin id recibe un UUID nativo")
}

// Reenviar el mismo documento con su id no crea un segundo artículo.
func TestInventoryUpsert_Idempotente(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewInventoryUseCase(repo)
	ctx := context.Background()

	first, err := uc.Upsert(ctx, dto.UpsertItemRequest{Name: "Mahou", PricePerUnit: 3.5})
	require.NoError(t, err)

	second, err := uc.Upsert(ctx, dto.UpsertItemRequest{ID: first.ID, Name: "Mahou", PricePerUnit: 3.8})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.True(t, decimal.NewFromFloat(3.8).Equal(all[0].PricePerUnit))
}

// Un upsert que solo menciona una ubicación no puede borrar el stock de las demás.
func TestInventoryUpsert_MergeDispersoDeStock(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newFakeItemRepo())
	ctx := context.Background()

	first, err := uc.Upsert(ctx, dto.UpsertItemRequest{
		Name:  "Mahou",
		Stock: map[string]any{"Rest": 10.0, "Nevera": "4,5"},
	})
	require.NoError(t, err)

	second, err := uc.Upsert(ctx, dto.UpsertItemRequest{
		ID:    first.ID,
		Name:  "Mahou",
		Stock: map[string]any{"Rest": 7.0},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(7).Equal(second.StockByLocation.Get("Rest")))
	assert.True(t, decimal.NewFromFloat(4.5).Equal(second.StockByLocation.Get("Nevera")),
		"la ubicación no mencionada conserva su valor, incluido el coaccionado de coma")
}

func TestBulkUpdateStock_SetYAdd(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewInventoryUseCase(repo)
	ctx := context.Background()

	mahou, err := uc.Upsert(ctx, dto.UpsertItemRequest{
		Name:  "Mahou",
		Stock: map[string]any{stock.AlmacenLocation: 10.0},
	})
	require.NoError(t, err)
	estrella, err := uc.Upsert(ctx, dto.UpsertItemRequest{
		Name:  "Estrella",
		Stock: map[string]any{stock.AlmacenLocation: 3.0},
	})
	require.NoError(t, err)

	count := uc.BulkUpdateStock(ctx, []dto.BulkStockUpdate{
		{Name: "Mahou", Stock: 2, Mode: "set"},
		{Name: "Estrella", Stock: 2, Mode: "add"},
	})
	assert.Equal(t, 2, count)

	storedMahou, _ := repo.GetByName(ctx, "Mahou")
	assert.True(t, decimal.NewFromInt(2).Equal(storedMahou.StockByLocation.Get(stock.AlmacenLocation)))
	storedEstrella, _ := repo.GetByName(ctx, "Estrella")
	assert.True(t, decimal.NewFromInt(5).Equal(storedEstrella.StockByLocation.Get(stock.AlmacenLocation)))

	// El lote solo toca Almacén aunque el artículo tenga stock en más sitios.
	assert.Equal(t, mahou.ID, storedMahou.ID)
	assert.Equal(t, estrella.ID, storedEstrella.ID)
}

func TestBulkUpdateStock_NombreDesconocido_SeOmiteSinAbortar(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewInventoryUseCase(repo)
	ctx := context.Background()

	_, err := uc.Upsert(ctx, dto.UpsertItemRequest{
		Name:  "Mahou",
		Stock: map[string]any{stock.AlmacenLocation: 1.0},
	})
	require.NoError(t, err)

	count := uc.BulkUpdateStock(ctx, []dto.BulkStockUpdate{
		{Name: "No existe", Stock: 99, Mode: "set"},
		{Name: "Mahou", Stock: 6, Mode: "set"},
	})

	assert.Equal(t, 2, count, "el recuento refleja las entradas procesadas, no las encontradas")
	stored, _ := repo.GetByName(ctx, "Mahou")
	assert.True(t, decimal.NewFromInt(6).Equal(stored.StockByLocation.Get(stock.AlmacenLocation)))
}

func TestInventoryDelete_SinID_EsInvalido(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newFakeItemRepo())
	assert.ErrorIs(t, uc.Delete(context.Background(), ""), domain.ErrInvalidInput)
}
