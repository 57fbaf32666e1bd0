package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ==========================================
// PANTRY ITEMS
// ==========================================

// Item is a tracked pantry good. The (Name, Location) pair acts as a soft
// uniqueness key: adding an item that matches an existing pair bumps its
// quantity instead of creating a second row.
type Item struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null" json:"name"`
	// Quantity is positive on creation and may be edited down to zero.
	Quantity int `gorm:"not null" json:"quantity"`
	// Location holds the location's name, not its id. There is no foreign
	// key; renames and deletes are propagated to items by the location
	// repository.
	Location  string    `gorm:"not null" json:"location"`
	Notes     string    `json:"notes"`
	Units     string    `json:"units"`
	CreatedAt time.Time `json:"createdAt"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ==========================================
// STORAGE LOCATIONS
// ==========================================

// Location is a named storage area (fridge, shelf, ...). Names are unique by
// UI convention only; the table carries no unique constraint.
type Location struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null" json:"name"`
	Type string    `gorm:"not null" json:"type"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
