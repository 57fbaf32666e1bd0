package database

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/models"
)

// Connect opens the shared Postgres handle from the DB_* environment
// variables. The handle is created once at startup and handed to the
// repositories; if this fails the process must not serve requests.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the items and locations tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Item{}, &models.Location{})
}
