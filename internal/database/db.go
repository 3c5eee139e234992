package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL dialect
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite dialect

	"brigade/internal/models"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(driver, connStr string) error {
	var err error
	DB, err = gorm.Open(driver, connStr)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// Migrate creates and updates all application tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
		&models.InventoryItem{},
		&models.StaffMember{},
		&models.Sale{},
		&models.Recommendation{},
		&models.ChatMessage{},
	).Error
}
