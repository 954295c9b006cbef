package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanTransitionTo enforces the forward-only order lifecycle:
// pending → processing → shipped → delivered, with cancellation permitted
// from pending or processing only. Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

type OrderItem struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	ProductName string    `json:"product_name" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,min=1"`
	UnitPrice   float64   `json:"unit_price" validate:"gte=0"`
	Image       string    `json:"image,omitempty"`
}

// Subtotal is quantity × unit price.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Order identity is a human-readable code such as "#12345". Customer name
// and email are denormalized copies, not live references.
type Order struct {
	ID              string      `json:"id"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	OrderDate       time.Time   `json:"order_date"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
}

// ItemsTotal is the sum of line subtotals. Total is always assigned from
// this on creation; the two may only disagree on rows written outside the
// service layer.
func (o *Order) ItemsTotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Subtotal()
	}

	return sum
}

type CreateOrderRequest struct {
	CustomerID      uuid.UUID   `json:"customer_id" validate:"required"`
	CustomerName    string      `json:"customer_name" validate:"required"`
	CustomerEmail   string      `json:"customer_email" validate:"required,email"`
	Items           []OrderItem `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string      `json:"shipping_address" validate:"required"`
	PaymentMethod   string      `json:"payment_method" validate:"required"`
}

// OrderFilter searches the order code, customer name and customer email,
// combined with an equality match on status.
type OrderFilter struct {
	Query  string
	Status OrderStatus
}
