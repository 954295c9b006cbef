package models

import (
	"time"

	"github.com/google/uuid"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

type Customer struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Location    string         `json:"location"`
	TotalOrders int            `json:"total_orders"`
	TotalSpent  float64        `json:"total_spent"`
	JoinDate    time.Time      `json:"join_date"`
	Status      CustomerStatus `json:"status"`
	Avatar      string         `json:"avatar,omitempty"`
}

type CreateCustomerRequest struct {
	Name     string         `json:"name" validate:"required,min=2,max=200"`
	Email    string         `json:"email" validate:"required,email"`
	Phone    string         `json:"phone" validate:"required"`
	Location string         `json:"location" validate:"required"`
	Status   CustomerStatus `json:"status" validate:"required,oneof=active inactive"`
	Avatar   string         `json:"avatar,omitempty"`
}

type UpdateCustomerRequest struct {
	Name        string         `json:"name" validate:"required,min=2,max=200"`
	Email       string         `json:"email" validate:"required,email"`
	Phone       string         `json:"phone" validate:"required"`
	Location    string         `json:"location" validate:"required"`
	TotalOrders int            `json:"total_orders" validate:"gte=0"`
	TotalSpent  float64        `json:"total_spent" validate:"gte=0"`
	Status      CustomerStatus `json:"status" validate:"required,oneof=active inactive"`
	Avatar      string         `json:"avatar,omitempty"`
}

// CustomerFilter searches name and email, combined with an equality match
// on status.
type CustomerFilter struct {
	Query  string
	Status CustomerStatus
}
