package dto

// UpsertItemRequest body para POST /api/inventory. El id es opcional: vacío
// significa alta nueva. Los valores de stockByLocation llegan crudos (número
// o texto con coma decimal) y se coaccionan en el caso de uso; solo las
// ubicaciones presentes en el mapa se actualizan.
type UpsertItemRequest struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Barcode      string         `json:"barcode"`
	PricePerUnit float64        `json:"pricePerUnitWithoutIVA"`
	Stock        map[string]any `json:"stockByLocation"`
}

// BulkStockUpdate es una entrada de la actualización masiva PUT /api/inventory.
// mode "set" reemplaza la cantidad en Almacén; "add" la incrementa.
type BulkStockUpdate struct {
	Name  string  `json:"name"`
	Stock float64 `json:"stock"`
	Mode  string  `json:"mode"`
}

// BulkUpdateResponse informa cuántas entradas procesó el lote. El lote nunca
// falla por entradas individuales no encontradas.
type BulkUpdateResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
