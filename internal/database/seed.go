package database

import (
	"fmt"
	"os"

	"github.com/jinzhu/gorm"
	"gopkg.in/yaml.v3"

	"brigade/internal/models"
)

// SeedData is the on-disk shape of the default dataset loaded on first
// boot.
type SeedData struct {
	Restaurants []seedRestaurant `yaml:"restaurants"`
	MenuItems   []seedMenuItem   `yaml:"menu_items"`
	Inventory   []seedInventory  `yaml:"inventory"`
	Staff       []seedStaff      `yaml:"staff"`
}

type seedRestaurant struct {
	Name              string   `yaml:"name"`
	Theme             string   `yaml:"theme"`
	Categories        []string `yaml:"categories"`
	KitchenCapability string   `yaml:"kitchen_capability"`
	StaffSize         int      `yaml:"staff_size"`
	EstablishmentType string   `yaml:"establishment_type"`
	ServiceStyle      string   `yaml:"service_style"`
	Location          string   `yaml:"location"`
}

type seedMenuItem struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Price       float64  `yaml:"price"`
	Cost        float64  `yaml:"cost"`
	Ingredients []string `yaml:"ingredients"`
}

type seedInventory struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
}

type seedStaff struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Station  string `yaml:"station"`
}

// Seed loads the default dataset into an empty database. Tables that
// already contain rows are left untouched.
func Seed(db *gorm.DB, path string) error {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	var restaurantCount int64
	db.Model(&models.Restaurant{}).Count(&restaurantCount)
	if restaurantCount == 0 {
		for _, r := range data.Restaurants {
			db.Create(&models.Restaurant{
				Name:              r.Name,
				Theme:             r.Theme,
				Categories:        r.Categories,
				KitchenCapability: r.KitchenCapability,
				StaffSize:         r.StaffSize,
				EstablishmentType: r.EstablishmentType,
				ServiceStyle:      r.ServiceStyle,
				Location:          r.Location,
			})
		}
	}

	var menuCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		for _, m := range data.MenuItems {
			db.Create(&models.MenuItem{
				RestaurantID: 1,
				Name:         m.Name,
				Description:  m.Description,
				Category:     m.Category,
				Price:        m.Price,
				Cost:         m.Cost,
				Ingredients:  m.Ingredients,
				Available:    true,
			})
		}
	}

	var inventoryCount int64
	db.Model(&models.InventoryItem{}).Count(&inventoryCount)
	if inventoryCount == 0 {
		for _, i := range data.Inventory {
			db.Create(&models.InventoryItem{
				RestaurantID: 1,
				Name:         i.Name,
				Category:     i.Category,
				Quantity:     i.Quantity,
				Unit:         i.Unit,
				Status:       string(models.StatusInStock),
			})
		}
	}

	var staffCount int64
	db.Model(&models.StaffMember{}).Count(&staffCount)
	if staffCount == 0 {
		for _, s := range data.Staff {
			db.Create(&models.StaffMember{
				RestaurantID: 1,
				Name:         s.Name,
				Email:        s.Email,
				Password:     s.Password,
				Role:         s.Role,
				Station:      s.Station,
				Active:       true,
			})
		}
	}

	return nil
}
