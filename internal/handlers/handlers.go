// Package handlers translates HTTP verbs and paths into repository calls and
// shapes the JSON responses and status codes.
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/repository"
)

// statusFor maps repository sentinel errors to HTTP status codes. Anything
// unrecognized is a store failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrValidation), errors.Is(err, repository.ErrInvalidID):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the JSON error body for a repository error. Store failures are
// logged and masked behind the fallback message; client errors surface their
// own text.
func fail(c *fiber.Ctx, err error, fallback string) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", fallback, err)
		return c.Status(status).JSON(fiber.Map{"error": fallback})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
