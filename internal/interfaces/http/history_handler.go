package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/application/usecase"
	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/entity"
)

// HistoryHandler maneja las peticiones HTTP del historial de registros y su
// exportación a CSV.
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Get GET /api/history — listado por fecha descendente, o con ?id=…&format=csv
// la descarga CSV de un registro concreto.
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	id := c.Query("id")
	if id != "" && c.Query("format") == "csv" {
		return h.exportCSV(c, id)
	}

	records, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_UNAVAILABLE", Message: err.Error()})
	}
	if records == nil {
		records = []*entity.InventoryRecord{}
	}
	return c.JSON(records)
}

func (h *HistoryHandler) exportCSV(c *fiber.Ctx, id string) error {
	csv, filename, err := h.uc.ExportCSV(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("no existe ningún registro con id %s", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))
	return c.SendString(csv)
}

// Upsert POST|PUT /api/history — guarda o actualiza un registro histórico.
func (h *HistoryHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.Upsert(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// Delete DELETE /api/history[?id=…] — con id elimina un registro (404 si no
// existe); sin id vacía el historial completo.
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		if err := h.uc.DeleteAll(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(dto.MessageResponse{Message: "All history records deleted"})
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("no existe ningún registro con id %s", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Deleted single record with ID %s", id)})
}
