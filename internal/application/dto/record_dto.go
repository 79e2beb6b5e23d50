package dto

import "github.com/jhoicas/barstock-api/internal/domain/entity"

// UpsertRecordRequest body para POST/PUT /api/history. Las líneas llegan ya
// con la forma del registro (los campos poblados dependen de type); la fecha
// ausente se rellena con el instante de creación.
type UpsertRecordRequest struct {
	ID    string              `json:"id"`
	Date  string              `json:"date"`
	Label string              `json:"label"`
	Type  string              `json:"type"`
	Items []entity.RecordItem `json:"items"`
}
