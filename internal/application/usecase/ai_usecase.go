package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/application/ports"
	"github.com/jhoicas/barstock-api/internal/domain"
)

// AIUseCase orquesta la lectura de albaranes con IA. Un fallo del
// colaborador externo queda aislado: jamás toca el estado del inventario.
type AIUseCase struct {
	parser ports.DeliveryNoteParser
}

// NewAIUseCase construye el caso de uso inyectando el puerto del parser.
func NewAIUseCase(parser ports.DeliveryNoteParser) *AIUseCase {
	return &AIUseCase{parser: parser}
}

// ProcessDeliveryNote valida la entrada y delega en el modelo generativo.
// Aplica un timeout de 30 s: el análisis de imagen puede tardar varios
// segundos y no debe bloquear indefinidamente los goroutines del servidor.
func (uc *AIUseCase) ProcessDeliveryNote(ctx context.Context, req dto.ProcessOrderRequest) (*dto.ParsedOrderDTO, error) {
	if req.ImageBase64 == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	result, err := uc.parser.ParseDeliveryNote(ctx, req.ImageBase64, req.InventoryNames)
	if err != nil {
		return nil, fmt.Errorf("lectura de albarán: %w", err)
	}
	return result, nil
}
