package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/glowcart/store-admin/internal/models"
)

// firstOrderCode seeds the human-readable order numbering.
const firstOrderCode = 12345

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	DeleteOrder(ctx context.Context, id string) error
	ListOrders(ctx context.Context) ([]*models.Order, error)
	FilterOrders(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error)
}

type orderRepository struct {
	mu       sync.RWMutex
	items    map[string]models.Order
	order    []string
	nextCode int
}

func NewOrderRepo() OrderRepository {
	return &orderRepository{
		items:    make(map[string]models.Order),
		nextCode: firstOrderCode,
	}
}

func (r *orderRepository) CreateOrder(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = fmt.Sprintf("#%d", r.nextCode)
	r.nextCode++

	r.items[order.ID] = cloneOrder(*order)
	r.order = append(r.order, order.ID)

	return nil
}

func (r *orderRepository) GetOrderByID(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	order = cloneOrder(order)

	return &order, nil
}

func (r *orderRepository) UpdateOrder(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[order.ID]; !ok {
		return ErrNotFound
	}

	r.items[order.ID] = cloneOrder(*order)

	return nil
}

func (r *orderRepository) DeleteOrder(_ context.Context, id string) error {
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

func (r *orderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return r.FilterOrders(ctx, models.OrderFilter{})
}

func (r *orderRepository) FilterOrders(_ context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*models.Order, 0, len(r.order))

	for _, id := range r.order {
		order := r.items[id]

		if !matchQuery(filter.Query, order.ID, order.CustomerName, order.CustomerEmail) {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}

		order = cloneOrder(order)
		orders = append(orders, &order)
	}

	return orders, nil
}

// cloneOrder deep-copies the line items so callers can never alias stored
// state through the slice.
func cloneOrder(order models.Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items

	return order
}
