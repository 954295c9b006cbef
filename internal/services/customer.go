package service

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/glowcart/store-admin/internal/errors"
	"github.com/glowcart/store-admin/internal/metrics"
	"github.com/glowcart/store-admin/internal/models"
	repository "github.com/glowcart/store-admin/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	FilterCustomers(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error)
}

type customerService struct {
	repo     repository.CustomerRepository
	validate *validator.Validate
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Invalid customer data").WithError(err)
	}

	customer := &models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		JoinDate: time.Now(),
		Status:   req.Status,
		Avatar:   req.Avatar,
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, appErrors.InternalError("Failed to create customer").WithError(err)
	}

	metrics.RecordOperation("customer", "create")

	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Customer not found").WithError(err)
	}

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Invalid customer data").WithError(err)
	}

	existing, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Customer not found").WithError(err)
	}

	customer := &models.Customer{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		TotalOrders: req.TotalOrders,
		TotalSpent:  req.TotalSpent,
		JoinDate:    existing.JoinDate,
		Status:      req.Status,
		Avatar:      req.Avatar,
	}

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Customer not found").WithError(err)
		}

		return nil, appErrors.InternalError("Failed to update customer").WithError(err)
	}

	metrics.RecordOperation("customer", "update")

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return appErrors.InternalError("Failed to delete customer").WithError(err)
	}

	metrics.RecordOperation("customer", "delete")

	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch customers").WithError(err)
	}

	return customers, nil
}

func (s *customerService) FilterCustomers(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error) {
	customers, err := s.repo.FilterCustomers(ctx, filter)
	if err != nil {
		return nil, appErrors.InternalError("Failed to filter customers").WithError(err)
	}

	return customers, nil
}
