package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/repository"
)

// GetLocations handles fetching all locations.
func GetLocations(locations *repository.LocationRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := locations.List()
		if err != nil {
			return fail(c, err, "Failed to fetch locations")
		}
		return c.JSON(list)
	}
}

// CreateLocation handles adding a storage location.
func CreateLocation(locations *repository.LocationRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input repository.CreateLocationInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		location, err := locations.Create(input)
		if err != nil {
			return fail(c, err, "Failed to add location")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "Location added successfully",
			"location": location,
		})
	}
}

// UpdateLocation handles renaming or retyping a location. A rename carries
// its item cascade along inside the repository.
func UpdateLocation(locations *repository.LocationRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input repository.UpdateLocationInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		location, err := locations.Update(c.Params("id"), input)
		if err != nil {
			return fail(c, err, "Failed to update location")
		}
		return c.JSON(fiber.Map{
			"message":  "Location updated successfully",
			"location": location,
		})
	}
}

// DeleteLocation handles removing a location and everything stored in it. The
// response message reports how many items were cascaded away.
func DeleteLocation(locations *repository.LocationRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		location, removed, err := locations.Delete(c.Params("id"))
		if err != nil {
			return fail(c, err, "Failed to delete location")
		}

		msg := fmt.Sprintf("Location '%s' deleted (no items were associated).", location.Name)
		if removed > 0 {
			msg = fmt.Sprintf("Location '%s' and %d item(s) deleted.", location.Name, removed)
		}
		return c.JSON(fiber.Map{"message": msg})
	}
}
