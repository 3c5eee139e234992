package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// MenuItem represents a dish on the menu
type MenuItem struct {
	gorm.Model
	RestaurantID uint        `json:"restaurant_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Price        float64     `json:"price"`
	Cost         float64     `json:"cost"`
	Ingredients  StringSlice `json:"ingredients" gorm:"type:text"`
	Allergens    StringSlice `json:"allergens" gorm:"type:text"`
	IsSpecialty  bool        `json:"is_specialty"`
	Available    bool        `json:"available"`
}

// TableName sets the table name for MenuItem
func (MenuItem) TableName() string {
	return "menu_items"
}

// MenuCategory represents the category of a menu item
type MenuCategory string

const (
	MenuCategoryAppetizer MenuCategory = "appetizer"
	MenuCategoryEntree    MenuCategory = "entree"
	MenuCategorySide      MenuCategory = "side"
	MenuCategoryDessert   MenuCategory = "dessert"
	MenuCategoryBeverage  MenuCategory = "beverage"
	MenuCategoryCocktail  MenuCategory = "cocktail"
	MenuCategorySpecialty MenuCategory = "specialty"
)

// ValidateMenuItem validates a menu item
func ValidateMenuItem(item *MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Price <= 0 {
		return fmt.Errorf("menu item price must be greater than 0")
	}
	if item.Cost < 0 {
		return fmt.Errorf("menu item cost cannot be negative")
	}
	return nil
}
