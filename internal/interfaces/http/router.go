package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/barstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *usecase.OrderUseCase
	HistoryUC   *usecase.HistoryUseCase
	AIUC        *usecase.AIUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Upsert)
	inventory.Put("/", inventoryHandler.BulkUpdate)
	inventory.Delete("/", inventoryHandler.Delete)

	// Pedidos a proveedor
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Upsert)
	orders.Delete("/", orderHandler.Delete)

	// Historial (snapshots y análisis) + export CSV
	history := api.Group("/history")
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	history.Get("/", historyHandler.Get)
	history.Post("/", historyHandler.Upsert)
	history.Put("/", historyHandler.Upsert) // crear y actualizar comparten el upsert
	history.Delete("/", historyHandler.Delete)

	// Lectura de albaranes con IA
	ai := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/process-order", aiHandler.ProcessOrder)
}
