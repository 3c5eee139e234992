package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Sale represents one sold line item for revenue tracking
type Sale struct {
	gorm.Model
	RestaurantID uint      `json:"restaurant_id"`
	MenuItemID   uint      `json:"menu_item_id"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	Total        float64   `json:"total"`
	SoldAt       time.Time `json:"sold_at"`
}

// TableName sets the table name for Sale
func (Sale) TableName() string {
	return "sales"
}

// SalesSummary aggregates sales over a reporting window
type SalesSummary struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}
