package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/export"
	"github.com/jhoicas/barstock-api/internal/domain/identity"
	"github.com/jhoicas/barstock-api/internal/domain/repository"
)

// caracteres prohibidos en nombres de archivo (Windows y separadores de ruta).
const filenameForbidden = `\/:*?"<>|`

// HistoryUseCase orquesta los registros históricos (snapshots y análisis) y
// su exportación a CSV.
type HistoryUseCase struct {
	repo      repository.InventoryRecordRepository
	formatter *export.Formatter
}

// NewHistoryUseCase construye el caso de uso con el formatter inyectado.
func NewHistoryUseCase(repo repository.InventoryRecordRepository, formatter *export.Formatter) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, formatter: formatter}
}

// List devuelve los registros ordenados por fecha descendente.
func (uc *HistoryUseCase) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	return uc.repo.List(ctx)
}

// Upsert guarda o actualiza un registro. El id externo se resuelve a la clave
// canónica (acepta tanto id nativo como texto heredado) y la fecha ausente se
// rellena con el instante actual.
func (uc *HistoryUseCase) Upsert(ctx context.Context, req dto.UpsertRecordRequest) (*entity.InventoryRecord, error) {
	record := &entity.InventoryRecord{
		ID:    identity.Resolve(req.ID),
		Date:  req.Date,
		Label: req.Label,
		Type:  req.Type,
		Items: req.Items,
	}
	if record.Date == "" {
		record.Date = time.Now().UTC().Format(time.RFC3339)
	}
	stored, err := uc.repo.Upsert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("upsert registro: %w", err)
	}
	return stored, nil
}

// ExportCSV busca el registro y lo serializa a CSV. Un id inexistente
// devuelve domain.ErrNotFound, nunca un CSV vacío. El segundo valor es el
// nombre de archivo sugerido para la descarga.
func (uc *HistoryUseCase) ExportCSV(ctx context.Context, id string) (csv, filename string, err error) {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	return uc.formatter.Format(record), downloadFilename(record), nil
}

// Delete elimina un registro individual; domain.ErrNotFound si no existía.
func (uc *HistoryUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// DeleteAll vacía el historial completo.
func (uc *HistoryUseCase) DeleteAll(ctx context.Context) error {
	return uc.repo.DeleteAll(ctx)
}

// downloadFilename deriva el nombre de descarga del registro: etiqueta sin
// caracteres prohibidos, truncada a 50, más el sufijo del tipo.
func downloadFilename(record *entity.InventoryRecord) string {
	label := strings.Map(func(r rune) rune {
		if strings.ContainsRune(filenameForbidden, r) {
			return -1
		}
		return r
	}, record.Label)
	if runes := []rune(label); len(runes) > 50 {
		label = string(runes[:50])
	}

	typeLabel := "Inventario"
	if record.Type == entity.RecordTypeAnalysis {
		typeLabel = "Analisis"
	}
	return label + "_" + typeLabel + ".csv"
}
