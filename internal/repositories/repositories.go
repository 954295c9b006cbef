package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by Get/Update when no record carries the given
// identity. Deletes of a missing identity are a no-op, not an error.
var ErrNotFound = errors.New("record not found")

// Repositories owns every in-memory collection. All domain state lives
// here for the duration of the process; nothing is shared across
// collections except by denormalized copy.
type Repositories struct {
	Product   ProductRepository
	Customer  CustomerRepository
	Order     OrderRepository
	Inventory InventoryRepository
}

func New() *Repositories {
	return &Repositories{
		Product:   NewProductRepo(),
		Customer:  NewCustomerRepo(),
		Order:     NewOrderRepo(),
		Inventory: NewInventoryRepo(),
	}
}

// matchQuery reports whether any of the fields contains the search term,
// case-insensitively. An empty term matches everything.
func matchQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}
