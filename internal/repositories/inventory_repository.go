package repository

import (
	"context"
	"sync"
	"time"

	"github.com/glowcart/store-admin/internal/models"
	"github.com/google/uuid"
)

type InventoryRepository interface {
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, item *models.InventoryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context) ([]*models.InventoryItem, error)
	FilterItems(ctx context.Context, filter models.InventoryFilter) ([]*models.InventoryItem, error)
}

type inventoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.InventoryItem
	order []uuid.UUID
}

func NewInventoryRepo() InventoryRepository {
	return &inventoryRepository{items: make(map[uuid.UUID]models.InventoryItem)}
}

func (r *inventoryRepository) CreateItem(_ context.Context, item *models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = uuid.New()
	if item.LastUpdated.IsZero() {
		item.LastUpdated = time.Now()
	}

	// The stored status is never trusted from the caller.
	item.RefreshStatus()

	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)

	return nil
}

func (r *inventoryRepository) GetItemByID(_ context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &item, nil
}

func (r *inventoryRepository) UpdateItem(_ context.Context, item *models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}

	item.RefreshStatus()
	r.items[item.ID] = *item

	return nil
}

func (r *inventoryRepository) DeleteItem(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}

	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

func (r *inventoryRepository) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	return r.FilterItems(ctx, models.InventoryFilter{})
}

func (r *inventoryRepository) FilterItems(_ context.Context, filter models.InventoryFilter) ([]*models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*models.InventoryItem, 0, len(r.order))

	for _, id := range r.order {
		item := r.items[id]

		if !matchQuery(filter.Query, item.ProductName, item.SKU) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}

		items = append(items, &item)
	}

	return items, nil
}
