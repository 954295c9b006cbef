package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/glowcart/store-admin/internal/models"
	repository "github.com/glowcart/store-admin/internal/repositories"
	"github.com/google/uuid"
)

const productImage = "https://images.pexels.com/photos/3785147/pexels-photo-3785147.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Load fills the repositories with the demo data set the dashboard ships
// with. State is in-memory only, so this runs on every start.
func Load(ctx context.Context, repos *repository.Repositories) error {
	productIDs, err := loadProducts(ctx, repos.Product)
	if err != nil {
		return err
	}

	customerIDs, err := loadCustomers(ctx, repos.Customer)
	if err != nil {
		return err
	}

	if err := loadOrders(ctx, repos.Order, customerIDs, productIDs); err != nil {
		return err
	}

	return loadInventory(ctx, repos.Inventory)
}

func loadProducts(ctx context.Context, repo repository.ProductRepository) (map[string]uuid.UUID, error) {
	products := []models.Product{
		{
			Name:        "Luxury Face Cream",
			Category:    models.CategorySkincare,
			Price:       89.99,
			Stock:       45,
			Rating:      4.8,
			Image:       productImage,
			Status:      models.ProductStatusActive,
			Description: "Premium anti-aging face cream with natural ingredients",
		},
		{
			Name:        "Vitamin C Serum",
			Category:    models.CategorySkincare,
			Price:       45.50,
			Stock:       32,
			Rating:      4.6,
			Image:       productImage,
			Status:      models.ProductStatusActive,
			Description: "Brightening vitamin C serum for radiant skin",
		},
		{
			Name:        "Moisturizing Mask",
			Category:    models.CategorySkincare,
			Price:       32.99,
			Stock:       67,
			Rating:      4.7,
			Image:       productImage,
			Status:      models.ProductStatusActive,
			Description: "Hydrating face mask for all skin types",
		},
		{
			Name:        "Lip Balm Set",
			Category:    models.CategoryMakeup,
			Price:       24.99,
			Stock:       89,
			Rating:      4.5,
			Image:       productImage,
			Status:      models.ProductStatusActive,
			Description: "Nourishing lip balm collection",
		},
	}

	ids := make(map[string]uuid.UUID, len(products))

	for i := range products {
		if err := repo.CreateProduct(ctx, &products[i]); err != nil {
			return nil, fmt.Errorf("seeding product %q: %w", products[i].Name, err)
		}

		ids[products[i].Name] = products[i].ID
	}

	return ids, nil
}

func loadCustomers(ctx context.Context, repo repository.CustomerRepository) (map[string]uuid.UUID, error) {
	customers := []models.Customer{
		{
			Name:        "Sarah Johnson",
			Email:       "sarah.johnson@email.com",
			Phone:       "+1 (555) 123-4567",
			Location:    "New York, NY",
			TotalOrders: 15,
			TotalSpent:  1250.75,
			JoinDate:    date(2023, time.August, 15),
			Status:      models.CustomerStatusActive,
			Avatar:      "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=80&h=80&fit=crop",
		},
		{
			Name:        "Emily Chen",
			Email:       "emily.chen@email.com",
			Phone:       "+1 (555) 234-5678",
			Location:    "Los Angeles, CA",
			TotalOrders: 8,
			TotalSpent:  675.50,
			JoinDate:    date(2023, time.September, 22),
			Status:      models.CustomerStatusActive,
			Avatar:      "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=80&h=80&fit=crop",
		},
		{
			Name:        "Maria Garcia",
			Email:       "maria.garcia@email.com",
			Phone:       "+1 (555) 345-6789",
			Location:    "Miami, FL",
			TotalOrders: 22,
			TotalSpent:  1890.25,
			JoinDate:    date(2023, time.July, 10),
			Status:      models.CustomerStatusActive,
			Avatar:      "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=80&h=80&fit=crop",
		},
		{
			Name:        "Jennifer Brown",
			Email:       "jennifer.brown@email.com",
			Phone:       "+1 (555) 456-7890",
			Location:    "Chicago, IL",
			TotalOrders: 5,
			TotalSpent:  320.99,
			JoinDate:    date(2023, time.November, 5),
			Status:      models.CustomerStatusInactive,
			Avatar:      "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpeg?auto=compress&cs=tinysrgb&w=80&h=80&fit=crop",
		},
	}

	ids := make(map[string]uuid.UUID, len(customers))

	for i := range customers {
		if err := repo.CreateCustomer(ctx, &customers[i]); err != nil {
			return nil, fmt.Errorf("seeding customer %q: %w", customers[i].Name, err)
		}

		ids[customers[i].Name] = customers[i].ID
	}

	return ids, nil
}

func loadOrders(ctx context.Context, repo repository.OrderRepository, customerIDs, productIDs map[string]uuid.UUID) error {
	orders := []models.Order{
		{
			CustomerID:    customerIDs["Sarah Johnson"],
			CustomerName:  "Sarah Johnson",
			CustomerEmail: "sarah.johnson@email.com",
			Items: []models.OrderItem{
				{ProductID: productIDs["Luxury Face Cream"], ProductName: "Luxury Face Cream", Quantity: 2, UnitPrice: 89.99, Image: productImage},
			},
			Status:          models.OrderStatusDelivered,
			OrderDate:       date(2024, time.January, 15),
			ShippingAddress: "123 Main St, New York, NY 10001",
			PaymentMethod:   "Credit Card",
		},
		{
			CustomerID:    customerIDs["Emily Chen"],
			CustomerName:  "Emily Chen",
			CustomerEmail: "emily.chen@email.com",
			Items: []models.OrderItem{
				{ProductID: productIDs["Vitamin C Serum"], ProductName: "Vitamin C Serum", Quantity: 1, UnitPrice: 45.50, Image: productImage},
			},
			Status:          models.OrderStatusProcessing,
			OrderDate:       date(2024, time.January, 15),
			ShippingAddress: "456 Oak Ave, Los Angeles, CA 90210",
			PaymentMethod:   "PayPal",
		},
		{
			CustomerID:    customerIDs["Maria Garcia"],
			CustomerName:  "Maria Garcia",
			CustomerEmail: "maria.garcia@email.com",
			Items: []models.OrderItem{
				{ProductID: productIDs["Luxury Face Cream"], ProductName: "Luxury Face Cream", Quantity: 1, UnitPrice: 89.99, Image: productImage},
				{ProductID: productIDs["Moisturizing Mask"], ProductName: "Moisturizing Mask", Quantity: 2, UnitPrice: 32.99, Image: productImage},
			},
			Status:          models.OrderStatusShipped,
			OrderDate:       date(2024, time.January, 14),
			ShippingAddress: "789 Beach Blvd, Miami, FL 33101",
			PaymentMethod:   "Credit Card",
		},
		{
			CustomerID:    customerIDs["Jennifer Brown"],
			CustomerName:  "Jennifer Brown",
			CustomerEmail: "jennifer.brown@email.com",
			Items: []models.OrderItem{
				{ProductID: productIDs["Lip Balm Set"], ProductName: "Lip Balm Set", Quantity: 1, UnitPrice: 24.99, Image: productImage},
			},
			Status:          models.OrderStatusPending,
			OrderDate:       date(2024, time.January, 16),
			ShippingAddress: "321 Pine St, Chicago, IL 60601",
			PaymentMethod:   "Credit Card",
		},
	}

	for i := range orders {
		orders[i].Total = orders[i].ItemsTotal()

		if err := repo.CreateOrder(ctx, &orders[i]); err != nil {
			return fmt.Errorf("seeding order for %q: %w", orders[i].CustomerName, err)
		}
	}

	return nil
}

func loadInventory(ctx context.Context, repo repository.InventoryRepository) error {
	items := []models.InventoryItem{
		{
			ProductName:   "Luxury Face Cream",
			SKU:           "LFC-001",
			Category:      models.CategorySkincare,
			CurrentStock:  45,
			MinStockLevel: 20,
			MaxStockLevel: 100,
			ReorderPoint:  25,
			UnitCost:      35.00,
			SellingPrice:  89.99,
			Supplier:      "Beauty Supply Co.",
			LastUpdated:   date(2024, time.January, 15),
		},
		{
			ProductName:   "Vitamin C Serum",
			SKU:           "VCS-002",
			Category:      models.CategorySkincare,
			CurrentStock:  15,
			MinStockLevel: 20,
			MaxStockLevel: 80,
			ReorderPoint:  25,
			UnitCost:      18.50,
			SellingPrice:  45.50,
			Supplier:      "Wellness Beauty",
			LastUpdated:   date(2024, time.January, 14),
		},
		{
			ProductName:   "Moisturizing Mask",
			SKU:           "MM-003",
			Category:      models.CategorySkincare,
			CurrentStock:  0,
			MinStockLevel: 15,
			MaxStockLevel: 60,
			ReorderPoint:  20,
			UnitCost:      12.99,
			SellingPrice:  32.99,
			Supplier:      "Natural Beauty Ltd.",
			LastUpdated:   date(2024, time.January, 10),
		},
		{
			ProductName:   "Lip Balm Set",
			SKU:           "LBS-004",
			Category:      models.CategoryMakeup,
			CurrentStock:  150,
			MinStockLevel: 30,
			MaxStockLevel: 120,
			ReorderPoint:  40,
			UnitCost:      8.99,
			SellingPrice:  24.99,
			Supplier:      "Cosmetic Supplies Inc.",
			LastUpdated:   date(2024, time.January, 16),
		},
	}

	for i := range items {
		if err := repo.CreateItem(ctx, &items[i]); err != nil {
			return fmt.Errorf("seeding inventory item %q: %w", items[i].SKU, err)
		}
	}

	return nil
}
