package repository

import (
	"context"
	"sync"
	"time"

	"github.com/glowcart/store-admin/internal/models"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context) ([]*models.Product, error)
	FilterProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
}

type productRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Product
	order []uuid.UUID
}

func NewProductRepo() ProductRepository {
	return &productRepository{items: make(map[uuid.UUID]models.Product)}
}

func (r *productRepository) CreateProduct(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.New()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	r.items[product.ID] = *product
	r.order = append(r.order, product.ID)

	return nil
}

func (r *productRepository) GetProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &product, nil
}

func (r *productRepository) UpdateProduct(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[product.ID]
	if !ok {
		return ErrNotFound
	}

	// Whole-record replace; only the creation timestamp survives.
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	r.items[product.ID] = *product

	return nil
}

func (r *productRepository) DeleteProduct(_ context.Context, id uuid.UUID) error {
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

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return r.FilterProducts(ctx, models.ProductFilter{})
}

func (r *productRepository) FilterProducts(_ context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*models.Product, 0, len(r.order))

	for _, id := range r.order {
		product := r.items[id]

		if !matchQuery(filter.Query, product.Name) {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}

		products = append(products, &product)
	}

	return products, nil
}
