package dto

import "github.com/shopspring/decimal"

// ProcessOrderRequest body para POST /api/ai/process-order: la foto del
// albarán en base64 y los nombres de artículos conocidos para que el modelo
// use la nomenclatura exacta del inventario.
type ProcessOrderRequest struct {
	ImageBase64    string   `json:"imageBase64"`
	InventoryNames []string `json:"inventoryNames"`
}

// ParsedOrderItem una línea reconocida en el albarán.
type ParsedOrderItem struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ParsedOrderDTO resultado del análisis del albarán.
type ParsedOrderDTO struct {
	Items []ParsedOrderItem `json:"items"`
}
