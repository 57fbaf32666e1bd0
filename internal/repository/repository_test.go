package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/models"
)

// newTestDB opens an in-memory store with the application schema. Each test
// gets its own database, so tests can run in parallel and in any order.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Item{}, &models.Location{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newTestRepos(t *testing.T) (*ItemRepository, *LocationRepository) {
	t.Helper()
	db := newTestDB(t)
	items := NewItemRepository(db)
	return items, NewLocationRepository(db, items)
}
