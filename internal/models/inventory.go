package models

import (
	"time"

	"github.com/google/uuid"
)

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in-stock"
	StockStatusLowStock   StockStatus = "low-stock"
	StockStatusOutOfStock StockStatus = "out-of-stock"
	StockStatusOverstock  StockStatus = "overstock"
)

// DeriveStockStatus classifies a stock level against its thresholds.
// The rules are evaluated in order: empty stock wins over everything,
// then low-stock, then overstock. When minStockLevel == maxStockLevel a
// level satisfying both branches reports low-stock because that rule is
// checked first.
func DeriveStockStatus(currentStock, minStockLevel, maxStockLevel int) StockStatus {
	switch {
	case currentStock == 0:
		return StockStatusOutOfStock
	case currentStock <= minStockLevel:
		return StockStatusLowStock
	case currentStock >= maxStockLevel:
		return StockStatusOverstock
	default:
		return StockStatusInStock
	}
}

type InventoryItem struct {
	ID            uuid.UUID   `json:"id"`
	ProductName   string      `json:"product_name"`
	SKU           string      `json:"sku"`
	Category      Category    `json:"category"`
	CurrentStock  int         `json:"current_stock"`
	MinStockLevel int         `json:"min_stock_level"`
	MaxStockLevel int         `json:"max_stock_level"`
	ReorderPoint  int         `json:"reorder_point"`
	UnitCost      float64     `json:"unit_cost"`
	SellingPrice  float64     `json:"selling_price"`
	Supplier      string      `json:"supplier"`
	LastUpdated   time.Time   `json:"last_updated"`
	Status        StockStatus `json:"status"`
}

// RefreshStatus rederives Status from the current stock level. Status is
// stored only for rendering and must never diverge from the derivation.
func (i *InventoryItem) RefreshStatus() {
	i.Status = DeriveStockStatus(i.CurrentStock, i.MinStockLevel, i.MaxStockLevel)
}

// StockValue is the carrying value of the item: currentStock × unitCost.
func (i *InventoryItem) StockValue() float64 {
	return float64(i.CurrentStock) * i.UnitCost
}

// MarginPercent is ((sellingPrice − unitCost) / sellingPrice) × 100.
// A zero selling price yields 0 so aggregate reductions stay finite.
func (i *InventoryItem) MarginPercent() float64 {
	if i.SellingPrice == 0 {
		return 0
	}

	return (i.SellingPrice - i.UnitCost) / i.SellingPrice * 100
}

type CreateInventoryItemRequest struct {
	ProductName   string   `json:"product_name" validate:"required,min=2,max=200"`
	SKU           string   `json:"sku" validate:"required,min=3,max=50"`
	Category      Category `json:"category" validate:"required,oneof=Skincare Makeup Fragrance 'Hair Care'"`
	CurrentStock  int      `json:"current_stock" validate:"gte=0"`
	MinStockLevel int      `json:"min_stock_level" validate:"gte=0"`
	MaxStockLevel int      `json:"max_stock_level" validate:"gte=0,gtefield=MinStockLevel"`
	ReorderPoint  int      `json:"reorder_point" validate:"gte=0,gtefield=MinStockLevel,ltefield=MaxStockLevel"`
	UnitCost      float64  `json:"unit_cost" validate:"gte=0"`
	SellingPrice  float64  `json:"selling_price" validate:"gte=0"`
	Supplier      string   `json:"supplier" validate:"required"`
}

type UpdateInventoryItemRequest struct {
	ProductName   string   `json:"product_name" validate:"required,min=2,max=200"`
	SKU           string   `json:"sku" validate:"required,min=3,max=50"`
	Category      Category `json:"category" validate:"required,oneof=Skincare Makeup Fragrance 'Hair Care'"`
	CurrentStock  int      `json:"current_stock" validate:"gte=0"`
	MinStockLevel int      `json:"min_stock_level" validate:"gte=0"`
	MaxStockLevel int      `json:"max_stock_level" validate:"gte=0,gtefield=MinStockLevel"`
	ReorderPoint  int      `json:"reorder_point" validate:"gte=0,gtefield=MinStockLevel,ltefield=MaxStockLevel"`
	UnitCost      float64  `json:"unit_cost" validate:"gte=0"`
	SellingPrice  float64  `json:"selling_price" validate:"gte=0"`
	Supplier      string   `json:"supplier" validate:"required"`
}

// InventoryFilter searches product name and SKU, combined with equality
// matches on status and category.
type InventoryFilter struct {
	Query    string
	Status   StockStatus
	Category Category
}
