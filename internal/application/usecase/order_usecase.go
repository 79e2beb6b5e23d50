package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/identity"
	"github.com/jhoicas/barstock-api/internal/domain/repository"
)

// OrderUseCase orquesta los pedidos a proveedor. Al guardar un pedido congela
// el precio unitario vigente de cada artículo referenciado: el coste
// histórico del pedido queda desacoplado de cambios de precio posteriores.
type OrderUseCase struct {
	orders repository.PurchaseOrderRepository
	items  repository.InventoryItemRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.PurchaseOrderRepository, items repository.InventoryItemRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, items: items}
}

// List devuelve los pedidos ordenados por fecha de pedido descendente.
func (uc *OrderUseCase) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	return uc.orders.List(ctx)
}

// Upsert guarda o actualiza un pedido. Los precios se consultan en bloque
// exactamente para los ids referenciados y se estampan línea a línea (0 si el
// artículo no existe). El estampado ocurre solo aquí, nunca retroactivamente.
func (uc *OrderUseCase) Upsert(ctx context.Context, req dto.UpsertOrderRequest) (*entity.PurchaseOrder, error) {
	if req.SupplierName == "" || req.OrderDate == "" {
		return nil, domain.ErrInvalidInput
	}

	ids := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		ids = append(ids, line.InventoryItemID)
	}
	prices, err := uc.items.PricesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("consultar precios: %w", err)
	}

	lines := make([]entity.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, entity.OrderItem{
			InventoryItemID:      line.InventoryItemID,
			Quantity:             line.Quantity,
			CostAtTimeOfPurchase: line.CostAtTimeOfPurchase,
			PricePerUnit:         prices[line.InventoryItemID], // cero si no se encontró
		})
	}

	order := &entity.PurchaseOrder{
		ID:           identity.Resolve(req.ID),
		OrderDate:    req.OrderDate,
		DeliveryDate: req.DeliveryDate,
		SupplierName: req.SupplierName,
		Status:       req.Status,
		TotalAmount:  req.TotalAmount,
		Items:        lines,
	}
	stored, err := uc.orders.Upsert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("upsert pedido: %w", err)
	}
	return stored, nil
}

// Delete elimina un pedido por id.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.orders.Delete(ctx, id)
}
