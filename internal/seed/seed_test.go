package seed_test

import (
	"context"
	"testing"

	"github.com/glowcart/store-admin/internal/models"
	repository "github.com/glowcart/store-admin/internal/repositories"
	"github.com/glowcart/store-admin/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	repos := repository.New()
	ctx := context.Background()

	require.NoError(t, seed.Load(ctx, repos))

	products, err := repos.Product.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	customers, err := repos.Customer.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 4)

	orders, err := repos.Order.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)
	assert.Equal(t, "#12345", orders[0].ID)
	assert.Equal(t, "#12348", orders[3].ID)

	items, err := repos.Inventory.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)

	t.Run("seeded totals match their line items", func(t *testing.T) {
		for _, order := range orders {
			assert.InDelta(t, order.ItemsTotal(), order.Total, 0.005, "order %s", order.ID)
		}
	})

	t.Run("seeded statuses match the derivation", func(t *testing.T) {
		expected := map[string]models.StockStatus{
			"LFC-001": models.StockStatusInStock,
			"VCS-002": models.StockStatusLowStock,
			"MM-003":  models.StockStatusOutOfStock,
			"LBS-004": models.StockStatusOverstock,
		}

		for _, item := range items {
			assert.Equal(t, expected[item.SKU], item.Status, "item %s", item.SKU)
			assert.Equal(t,
				models.DeriveStockStatus(item.CurrentStock, item.MinStockLevel, item.MaxStockLevel),
				item.Status, "item %s", item.SKU)
		}
	})

	t.Run("orders reference seeded customers", func(t *testing.T) {
		for _, order := range orders {
			customer, err := repos.Customer.GetCustomerByID(ctx, order.CustomerID)
			require.NoError(t, err)
			assert.Equal(t, customer.Name, order.CustomerName)
			assert.Equal(t, customer.Email, order.CustomerEmail)
		}
	})
}
