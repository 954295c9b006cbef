package repository

import (
	"context"
	"sync"

	"github.com/glowcart/store-admin/internal/models"
	"github.com/google/uuid"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	FilterCustomers(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error)
}

type customerRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Customer
	order []uuid.UUID
}

func NewCustomerRepo() CustomerRepository {
	return &customerRepository{items: make(map[uuid.UUID]models.Customer)}
}

func (r *customerRepository) CreateCustomer(_ context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer.ID = uuid.New()
	r.items[customer.ID] = *customer
	r.order = append(r.order, customer.ID)

	return nil
}

func (r *customerRepository) GetCustomerByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &customer, nil
}

func (r *customerRepository) UpdateCustomer(_ context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[customer.ID]; !ok {
		return ErrNotFound
	}

	r.items[customer.ID] = *customer

	return nil
}

func (r *customerRepository) DeleteCustomer(_ context.Context, id uuid.UUID) error {
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

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return r.FilterCustomers(ctx, models.CustomerFilter{})
}

func (r *customerRepository) FilterCustomers(_ context.Context, filter models.CustomerFilter) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*models.Customer, 0, len(r.order))

	for _, id := range r.order {
		customer := r.items[id]

		if !matchQuery(filter.Query, customer.Name, customer.Email) {
			continue
		}
		if filter.Status != "" && customer.Status != filter.Status {
			continue
		}

		customers = append(customers, &customer)
	}

	return customers, nil
}
