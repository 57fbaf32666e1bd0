package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/models"
)

// CreateItemInput carries the fields accepted when adding an item. Name and
// Location are trimmed before validation.
type CreateItemInput struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Location string `json:"location" validate:"required"`
	Notes    string `json:"notes"`
	Units    string `json:"units"`
}

// UpdateItemInput carries the editable fields of an existing item. Notes and
// Units are set verbatim, so an empty value clears the stored one.
type UpdateItemInput struct {
	Quantity int    `json:"quantity" validate:"gte=0"`
	Notes    string `json:"notes"`
	Units    string `json:"units"`
}

// ItemRepository provides CRUD plus merge-on-insert over the items table.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// List returns every item ordered by (location, name) so the UI renders a
// stable grouping without sorting client-side.
func (r *ItemRepository) List() ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.db.Order("location asc, name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	return items, nil
}

// Create adds an item, or merges it into an existing one when the trimmed
// (name, location) pair already exists: the quantity is incremented and
// notes/units are overwritten only when supplied. The returned bool reports
// whether a merge happened.
func (r *ItemRepository) Create(input CreateItemInput) (*models.Item, bool, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)

	if err := validate.Struct(input); err != nil {
		if hasFailedTag(err, "gt") {
			return nil, false, fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
		}
		return nil, false, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	var existing models.Item
	err := r.db.Where("name = ? AND location = ?", input.Name, input.Location).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]any{"quantity": gorm.Expr("quantity + ?", input.Quantity)}
		if input.Notes != "" {
			updates["notes"] = input.Notes
		}
		if input.Units != "" {
			updates["units"] = input.Units
		}
		if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, false, fmt.Errorf("merge item: %w", err)
		}
		if err := r.db.First(&existing, "id = ?", existing.ID).Error; err != nil {
			return nil, false, fmt.Errorf("reload merged item: %w", err)
		}
		return &existing, true, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		item := models.Item{
			Name:     input.Name,
			Quantity: input.Quantity,
			Location: input.Location,
			Notes:    input.Notes,
			Units:    input.Units,
		}
		if err := r.db.Create(&item).Error; err != nil {
			return nil, false, fmt.Errorf("insert item: %w", err)
		}
		return &item, false, nil

	default:
		return nil, false, fmt.Errorf("lookup item: %w", err)
	}
}

// Update sets quantity, notes and units on the item with the given id.
func (r *ItemRepository) Update(rawID string, input UpdateItemInput) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}

	res := r.db.Model(&models.Item{}).Where("id = ?", id).Updates(map[string]any{
		"quantity": input.Quantity,
		"notes":    input.Notes,
		"units":    input.Units,
	})
	if res.Error != nil {
		return fmt.Errorf("update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	return nil
}

// Delete removes the item with the given id. Deleting an id that no longer
// exists is a no-op success; only a malformed id is an error.
func (r *ItemRepository) Delete(rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Item{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// DeleteByLocationName removes every item stored under the given location
// name and reports how many were removed. Idempotent: a second call after a
// partial failure deletes whatever remains.
func (r *ItemRepository) DeleteByLocationName(name string) (int64, error) {
	return r.deleteByLocationName(r.db, name)
}

// RenameLocationReferences rewrites the location field on every item that
// still points at oldName.
func (r *ItemRepository) RenameLocationReferences(oldName, newName string) error {
	return r.renameLocationReferences(r.db, oldName, newName)
}

// The tx-aware variants below let the location repository run both halves of
// a cascade inside one transaction.

func (r *ItemRepository) deleteByLocationName(db *gorm.DB, name string) (int64, error) {
	res := db.Where("location = ?", name).Delete(&models.Item{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete items for location %q: %w", name, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ItemRepository) renameLocationReferences(db *gorm.DB, oldName, newName string) error {
	err := db.Model(&models.Item{}).Where("location = ?", oldName).
		Update("location", newName).Error
	if err != nil {
		return fmt.Errorf("rename item references %q -> %q: %w", oldName, newName, err)
	}
	return nil
}
