package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// InventoryItem represents an item in the kitchen inventory
type InventoryItem struct {
	gorm.Model
	RestaurantID uint       `json:"restaurant_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	ReorderAt    float64    `json:"reorder_at"`
	Location     string     `json:"location"`
	Status       string     `json:"status"`
}

// TableName sets the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// InventoryCategory represents the category of an inventory item
type InventoryCategory string

const (
	CategoryProtein    InventoryCategory = "protein"
	CategoryProduce    InventoryCategory = "produce"
	CategoryDairy      InventoryCategory = "dairy"
	CategoryDryGoods   InventoryCategory = "dry_goods"
	CategorySpices     InventoryCategory = "spices"
	CategoryCondiments InventoryCategory = "condiments"
	CategoryBeverages  InventoryCategory = "beverages"
)

// InventoryStatus represents the status of an inventory item
type InventoryStatus string

const (
	StatusInStock    InventoryStatus = "in_stock"
	StatusLow        InventoryStatus = "low"
	StatusOutOfStock InventoryStatus = "out_of_stock"
	StatusOrdered    InventoryStatus = "ordered"
	StatusExpired    InventoryStatus = "expired"
)

// NeedsReorder reports whether the item has dropped below its reorder
// threshold.
func (i *InventoryItem) NeedsReorder() bool {
	return i.ReorderAt > 0 && i.Quantity <= i.ReorderAt
}
