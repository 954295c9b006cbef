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

// InventorySummary carries the figures rendered on the inventory
// dashboard cards.
type InventorySummary struct {
	TotalItems      int     `json:"total_items"`
	LowStockAlerts  int     `json:"low_stock_alerts"`
	TotalStockValue float64 `json:"total_stock_value"`
	Categories      int     `json:"categories"`
}

type InventoryService interface {
	AddItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context) ([]*models.InventoryItem, error)
	FilterItems(ctx context.Context, filter models.InventoryFilter) ([]*models.InventoryItem, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.InventoryItem, error)
	Restock(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	LowStockItems(ctx context.Context) ([]*models.InventoryItem, error)
	TotalStockValue(ctx context.Context) (float64, error)
	Summary(ctx context.Context) (*InventorySummary, error)
}

type inventoryService struct {
	repo     repository.InventoryRepository
	validate *validator.Validate
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Invalid inventory item data").WithError(err)
	}

	item := &models.InventoryItem{
		ProductName:   req.ProductName,
		SKU:           req.SKU,
		Category:      req.Category,
		CurrentStock:  req.CurrentStock,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		ReorderPoint:  req.ReorderPoint,
		UnitCost:      req.UnitCost,
		SellingPrice:  req.SellingPrice,
		Supplier:      req.Supplier,
		LastUpdated:   time.Now(),
	}
	item.RefreshStatus()

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, appErrors.InternalError("Failed to add inventory item").WithError(err)
	}

	metrics.RecordOperation("inventory", "create")
	s.publishGauges(ctx)

	return item, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
	}

	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Invalid inventory item data").WithError(err)
	}

	existing, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
	}

	item := &models.InventoryItem{
		ID:            id,
		ProductName:   req.ProductName,
		SKU:           req.SKU,
		Category:      req.Category,
		CurrentStock:  req.CurrentStock,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		ReorderPoint:  req.ReorderPoint,
		UnitCost:      req.UnitCost,
		SellingPrice:  req.SellingPrice,
		Supplier:      req.Supplier,
		LastUpdated:   existing.LastUpdated,
	}
	item.RefreshStatus()

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
		}

		return nil, appErrors.InternalError("Failed to update inventory item").WithError(err)
	}

	metrics.RecordOperation("inventory", "update")
	s.publishGauges(ctx)

	return item, nil
}

func (s *inventoryService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return appErrors.InternalError("Failed to remove inventory item").WithError(err)
	}

	metrics.RecordOperation("inventory", "delete")
	s.publishGauges(ctx)

	return nil
}

func (s *inventoryService) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch inventory").WithError(err)
	}

	return items, nil
}

func (s *inventoryService) FilterItems(ctx context.Context, filter models.InventoryFilter) ([]*models.InventoryItem, error) {
	items, err := s.repo.FilterItems(ctx, filter)
	if err != nil {
		return nil, appErrors.InternalError("Failed to filter inventory").WithError(err)
	}

	return items, nil
}

// AdjustStock applies a signed delta to the item's stock, flooring at
// zero, rederives the status and stamps the update time.
func (s *inventoryService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.InventoryItem, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
	}

	newStock := item.CurrentStock + delta
	if newStock < 0 {
		newStock = 0
	}

	item.CurrentStock = newStock
	item.RefreshStatus()
	item.LastUpdated = time.Now()

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, appErrors.InternalError("Failed to adjust stock").WithError(err)
	}

	metrics.RecordStockAdjustment()
	s.publishGauges(ctx)

	return item, nil
}

// Restock adds the reorder-point quantity in one adjustment. An item
// already at or above its reorder point does not need restocking.
func (s *inventoryService) Restock(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
	}

	if item.CurrentStock >= item.ReorderPoint {
		return nil, appErrors.BadRequestError("Stock is already at or above the reorder point")
	}

	return s.AdjustStock(ctx, id, item.ReorderPoint)
}

// LowStockItems is recomputed from live data on every call, never cached.
func (s *inventoryService) LowStockItems(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch inventory").WithError(err)
	}

	var alerts []*models.InventoryItem
	for _, item := range items {
		if item.Status == models.StockStatusLowStock || item.Status == models.StockStatusOutOfStock {
			alerts = append(alerts, item)
		}
	}

	return alerts, nil
}

func (s *inventoryService) TotalStockValue(ctx context.Context) (float64, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return 0, appErrors.InternalError("Failed to fetch inventory").WithError(err)
	}

	var total float64
	for _, item := range items {
		total += item.StockValue()
	}

	return total, nil
}

func (s *inventoryService) Summary(ctx context.Context) (*InventorySummary, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch inventory").WithError(err)
	}

	summary := &InventorySummary{TotalItems: len(items)}
	categories := make(map[models.Category]struct{})

	for _, item := range items {
		if item.Status == models.StockStatusLowStock || item.Status == models.StockStatusOutOfStock {
			summary.LowStockAlerts++
		}

		summary.TotalStockValue += item.StockValue()
		categories[item.Category] = struct{}{}
	}

	summary.Categories = len(categories)

	return summary, nil
}

// publishGauges refreshes the exported inventory gauges after a mutation.
func (s *inventoryService) publishGauges(ctx context.Context) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return
	}

	metrics.SetLowStockItems(summary.LowStockAlerts)
	metrics.SetStockValue(summary.TotalStockValue)
}
