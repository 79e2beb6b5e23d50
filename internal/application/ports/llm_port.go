package ports

import (
	"context"

	"github.com/jhoicas/barstock-api/internal/application/dto"
)

// DeliveryNoteParser puerto hacia el servicio generativo que interpreta la
// foto de un albarán. El núcleo solo consume su salida ya estructurada
// (nombre y cantidad por línea), nunca su razonamiento libre.
type DeliveryNoteParser interface {
	ParseDeliveryNote(ctx context.Context, imageBase64 string, inventoryNames []string) (*dto.ParsedOrderDTO, error)
}
