package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem es una línea de pedido. PricePerUnit es una instantánea del
// precio unitario del artículo en el momento de crear el pedido: cambios
// posteriores del precio en el inventario no alteran pedidos ya guardados.
type OrderItem struct {
	InventoryItemID      string          `json:"inventoryItemId"`
	Quantity             decimal.Decimal `json:"quantity"`
	CostAtTimeOfPurchase decimal.Decimal `json:"costAtTimeOfPurchase"`
	PricePerUnit         decimal.Decimal `json:"pricePerUnitWithoutIVA"`
}

// PurchaseOrder representa un pedido a proveedor. El ID lo genera el cliente
// y se trata como identificador nativo del almacén.
type PurchaseOrder struct {
	ID           string           `json:"id"`
	OrderDate    string           `json:"orderDate"`
	DeliveryDate string           `json:"deliveryDate,omitempty"`
	SupplierName string           `json:"supplierName"`
	Status       string           `json:"status"`
	TotalAmount  *decimal.Decimal `json:"totalAmount,omitempty"`
	Items        []OrderItem      `json:"items"`
	CreatedAt    time.Time        `json:"createdAt,omitempty"`
	UpdatedAt    time.Time        `json:"updatedAt,omitempty"`
}
