package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

// Tipos de registro histórico. El tipo es inmutable una vez escrito el
// registro y determina por completo el esquema de columnas del export.
const (
	RecordTypeSnapshot = "snapshot" // stock por ubicación, valorado
	RecordTypeAnalysis = "analysis" // consumo entre dos instantes
)

// RecordItem es una línea de un registro histórico. Los campos numéricos de
// análisis son punteros: la ausencia se distingue del cero explícito y solo
// se convierte en 0 al renderizar.
type RecordItem struct {
	ItemID       string           `json:"itemId,omitempty"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Barcode      string           `json:"barcode,omitempty"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnitWithoutIVA,omitempty"`

	// Campos de análisis (consumo).
	CurrentStock *decimal.Decimal `json:"currentStock,omitempty"`
	PendingStock *decimal.Decimal `json:"pendingStock,omitempty"`
	InitialStock *decimal.Decimal `json:"initialStock,omitempty"`
	EndStock     *decimal.Decimal `json:"endStock,omitempty"`
	Consumption  *decimal.Decimal `json:"consumption,omitempty"`

	// Campo de snapshot: stock por ubicación congelado en el instante del registro.
	StockByLocationSnapshot stock.ByLocation `json:"stockByLocationSnapshot,omitempty"`
}

// InventoryRecord es un artefacto histórico puntual: un snapshot de stock o
// un análisis de consumo, según Type.
type InventoryRecord struct {
	ID        string       `json:"id"`
	Date      string       `json:"date"`
	Label     string       `json:"label"`
	Type      string       `json:"type"`
	Items     []RecordItem `json:"items"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt,omitempty"`
}
