package dto

import "github.com/shopspring/decimal"

// OrderItemRequest línea de pedido entrante. El precio unitario NO se acepta
// del cliente: se congela desde el inventario actual al guardar.
type OrderItemRequest struct {
	InventoryItemID      string          `json:"inventoryItemId"`
	Quantity             decimal.Decimal `json:"quantity"`
	CostAtTimeOfPurchase decimal.Decimal `json:"costAtTimeOfPurchase"`
}

// UpsertOrderRequest body para POST /api/orders.
type UpsertOrderRequest struct {
	ID           string             `json:"id"`
	OrderDate    string             `json:"orderDate"`
	DeliveryDate string             `json:"deliveryDate"`
	SupplierName string             `json:"supplierName"`
	Status       string             `json:"status"`
	TotalAmount  *decimal.Decimal   `json:"totalAmount"`
	Items        []OrderItemRequest `json:"items"`
}
