package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/barstock-api/internal/domain"
	"github.com/jhoicas/barstock-api/internal/domain/entity"
	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

// Dobles en memoria de los puertos de persistencia. Protegidos con mutex
// porque la actualización masiva de stock los ataca desde varias goroutines.

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.InventoryItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.InventoryItem)}
}

func (r *fakeItemRepo) Upsert(_ context.Context, item *entity.InventoryItem, patch stock.Patch) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	if prev, ok := r.items[item.ID]; ok {
		stored.StockByLocation = patch.Apply(prev.StockByLocation)
	} else {
		stored.StockByLocation = patch.Apply(nil)
	}
	r.items[item.ID] = &stored
	return &stored, nil
}

func (r *fakeItemRepo) GetByName(_ context.Context, name string) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) SetLocationStock(_ context.Context, id, location string, qty decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	merged := item.StockByLocation.Clone()
	if merged == nil {
		merged = stock.ByLocation{}
	}
	merged[location] = qty
	item.StockByLocation = merged
	return nil
}

func (r *fakeItemRepo) PricesByIDs(_ context.Context, ids []string) (map[string]decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prices := make(map[string]decimal.Decimal)
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			prices[id] = item.PricePerUnit
		}
	}
	return prices, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.PurchaseOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.PurchaseOrder)}
}

func (r *fakeOrderRepo) Upsert(_ context.Context, order *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *order
	r.orders[order.ID] = &stored
	return &stored, nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		copied := *o
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate > out[j].OrderDate })
	return out, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	records map[string]*entity.InventoryRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]*entity.InventoryRecord)}
}

func (r *fakeRecordRepo) Upsert(_ context.Context, record *entity.InventoryRecord) (*entity.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *record
	r.records[record.ID] = &stored
	return &stored, nil
}

func (r *fakeRecordRepo) GetByID(_ context.Context, id string) (*entity.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRecordRepo) List(_ context.Context) ([]*entity.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.InventoryRecord, 0, len(r.records))
	for _, rec := range r.records {
		copied := *rec
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRecordRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]*entity.InventoryRecord)
	return nil
}
