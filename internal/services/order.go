package service

import (
	"context"
	"fmt"
	"math"
	"time"

	appErrors "github.com/glowcart/store-admin/internal/errors"
	"github.com/glowcart/store-admin/internal/metrics"
	"github.com/glowcart/store-admin/internal/models"
	repository "github.com/glowcart/store-admin/internal/repositories"
	"github.com/go-playground/validator/v10"
)

// totalTolerance absorbs float noise when auditing stored totals against
// recomputed line sums; anything beyond half a cent is drift.
const totalTolerance = 0.005

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, next models.OrderStatus) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	FilterOrders(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error)
	ValidateTotals(ctx context.Context) ([]string, error)
}

type orderService struct {
	repo     repository.OrderRepository
	validate *validator.Validate
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Invalid order data").WithError(err)
	}

	order := &models.Order{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Items:           req.Items,
		Status:          models.OrderStatusPending,
		OrderDate:       time.Now(),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	}

	// The total is derived, never accepted from the caller.
	order.Total = order.ItemsTotal()

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, appErrors.InternalError("Failed to create order").WithError(err)
	}

	metrics.RecordOperation("order", "create")

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, appErrors.ValidationError(fmt.Sprintf("Unknown order status '%s'", next))
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Order not found").WithError(err)
	}

	// Setting the current status again is a no-op, not a transition.
	if order.Status == next {
		return order, nil
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, appErrors.BadRequestError(
			fmt.Sprintf("Order cannot move from '%s' to '%s'", order.Status, next))
	}

	order.Status = next
	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, appErrors.InternalError("Failed to update order status").WithError(err)
	}

	metrics.RecordOperation("order", "status_change")

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

func (s *orderService) FilterOrders(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	orders, err := s.repo.FilterOrders(ctx, filter)
	if err != nil {
		return nil, appErrors.InternalError("Failed to filter orders").WithError(err)
	}

	return orders, nil
}

// ValidateTotals audits every stored order total against the sum of its
// line subtotals and returns the codes of orders that drifted. Rows
// written through CreateOrder can never appear here.
func (s *orderService) ValidateTotals(ctx context.Context) ([]string, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch orders").WithError(err)
	}

	var drifted []string
	for _, order := range orders {
		if math.Abs(order.Total-order.ItemsTotal()) > totalTolerance {
			drifted = append(drifted, order.ID)
		}
	}

	return drifted, nil
}
