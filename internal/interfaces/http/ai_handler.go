package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/application/usecase"
	"github.com/jhoicas/barstock-api/internal/domain"
)

// AIHandler maneja la lectura de albaranes asistida por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// ProcessOrder POST /api/ai/process-order — analiza la foto de un albarán y
// devuelve las líneas {name, quantity} reconocidas. Un fallo del servicio de
// IA se reporta aislado; nunca modifica el inventario.
func (h *AIHandler) ProcessOrder(c *fiber.Ctx) error {
	var req dto.ProcessOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.uc.ProcessDeliveryNote(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "imageBase64 es obligatorio"})
		}
		if strings.Contains(err.Error(), "GEMINI_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "el servicio de IA no está configurado"})
		}
		if isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: "IA: " + err.Error()})
	}
	return c.JSON(result)
}

// isTimeout detecta errores de timeout/cancelación de contexto en el mensaje de error.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelación")
}
