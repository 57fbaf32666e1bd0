package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/models"
)

// CreateLocationInput carries the fields accepted when adding a location.
type CreateLocationInput struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=Fridge Shelf Pantry Storage"`
}

// UpdateLocationInput carries the optional fields of a location update. An
// empty field is left untouched.
//
// TODO: the update path rejects "Storage" while create accepts it; confirm
// the intended type set with product before unifying the two lists.
type UpdateLocationInput struct {
	Name string `json:"name"`
	Type string `json:"type" validate:"omitempty,oneof=Fridge Shelf Pantry"`
}

// LocationRepository provides CRUD over the locations table. It is the only
// component that mutates location names, so every rename or delete runs its
// item cascade here and nowhere else.
type LocationRepository struct {
	db    *gorm.DB
	items *ItemRepository
}

func NewLocationRepository(db *gorm.DB, items *ItemRepository) *LocationRepository {
	return &LocationRepository{db: db, items: items}
}

// List returns all locations. Ordering is left to the UI, which merges in
// unsaved locations before sorting anyway.
func (r *LocationRepository) List() ([]models.Location, error) {
	locations := make([]models.Location, 0)
	if err := r.db.Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	return locations, nil
}

// Create inserts a new location. Name and type are trimmed before validation.
func (r *LocationRepository) Create(input CreateLocationInput) (*models.Location, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Type = strings.TrimSpace(input.Type)

	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: missing or invalid required fields", ErrValidation)
	}

	location := models.Location{Name: input.Name, Type: input.Type}
	if err := r.db.Create(&location).Error; err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}
	return &location, nil
}

// Update applies the supplied fields to a location. When the name changes,
// every item referencing the old name is rewritten in the same transaction,
// so readers never observe a renamed location with orphaned items.
func (r *LocationRepository) Update(rawID string, input UpdateLocationInput) (*models.Location, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: invalid location type", ErrValidation)
	}

	var location models.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: location %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("lookup location: %w", err)
	}

	updates := map[string]any{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Type != "" {
		updates["type"] = input.Type
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Location{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return fmt.Errorf("update location: %w", err)
			}
		}
		if input.Name != "" && input.Name != location.Name {
			return r.items.renameLocationReferences(tx, location.Name, input.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload location: %w", err)
	}
	return &location, nil
}

// Delete removes a location together with every item stored under its name
// and reports how many items went with it. Both deletes run in one
// transaction.
func (r *LocationRepository) Delete(rawID string) (*models.Location, int64, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, 0, err
	}

	var location models.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("%w: location %s", ErrNotFound, id)
		}
		return nil, 0, fmt.Errorf("lookup location: %w", err)
	}

	var removed int64
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Location{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete location: %w", err)
		}
		n, err := r.items.deleteByLocationName(tx, location.Name)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &location, removed, nil
}
