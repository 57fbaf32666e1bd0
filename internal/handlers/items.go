package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/repository"
)

// GetItems handles fetching all items, sorted for a stable UI.
func GetItems(items *repository.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := items.List()
		if err != nil {
			return fail(c, err, "Failed to fetch items")
		}
		return c.JSON(list)
	}
}

// CreateItem handles adding an item. A duplicate (name, location) pair merges
// into the existing row and answers 200 instead of 201 so the client can tell
// the two apart.
func CreateItem(items *repository.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input repository.CreateItemInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		item, merged, err := items.Create(input)
		if err != nil {
			return fail(c, err, "Failed to add item")
		}
		if merged {
			return c.JSON(fiber.Map{"message": "Item updated", "item": item})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Item added", "item": item})
	}
}

// UpdateItem handles editing an item's quantity, notes and units.
func UpdateItem(items *repository.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input repository.UpdateItemInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if err := items.Update(c.Params("id"), input); err != nil {
			return fail(c, err, "Failed to update item")
		}
		return c.JSON(fiber.Map{"message": "Item updated successfully"})
	}
}

// DeleteItem handles removing a single item.
func DeleteItem(items *repository.ItemRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := items.Delete(c.Params("id")); err != nil {
			return fail(c, err, "Failed to delete item")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
