package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/application/usecase"
	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List GET /api/inventory — inventario completo ordenado por nombre.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_UNAVAILABLE", Message: err.Error()})
	}
	if items == nil {
		items = []*entity.InventoryItem{}
	}
	return c.JSON(items)
}

// Upsert POST /api/inventory — alta o actualización idempotente de un artículo.
func (h *InventoryHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Upsert(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es obligatorio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// BulkUpdate PUT /api/inventory — lote de ajustes set/add sobre Almacén.
func (h *InventoryHandler) BulkUpdate(c *fiber.Ctx) error {
	var updates []dto.BulkStockUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba un array de actualizaciones"})
	}
	count := h.uc.BulkUpdateStock(c.Context(), updates)
	return c.JSON(dto.BulkUpdateResponse{
		Message: fmt.Sprintf("Bulk update processed for %d items.", count),
		Count:   count,
	})
}

// Delete DELETE /api/inventory?id=… — elimina un artículo por id externo.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es obligatorio"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Deleted"})
}
