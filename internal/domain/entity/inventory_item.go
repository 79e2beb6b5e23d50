package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

// InventoryItem representa un artículo de inventario del bar con su stock
// por ubicación. El campo ID es el identificador externo estable: lo asigna
// el cliente o el servidor en el primer alta y nunca se reasigna.
type InventoryItem struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Barcode         string           `json:"barcode"`
	PricePerUnit    decimal.Decimal  `json:"pricePerUnitWithoutIVA"`
	StockByLocation stock.ByLocation `json:"stockByLocation"`
	CreatedAt       time.Time        `json:"createdAt,omitempty"`
	UpdatedAt       time.Time        `json:"updatedAt,omitempty"`
}
