package handlers

import (
	"errors"

	employeeController "toolroom/internal/controllers/employees"
	machineController "toolroom/internal/controllers/machines"
	plannerController "toolroom/internal/controllers/planner"
	planController "toolroom/internal/controllers/plans"
	reportController "toolroom/internal/controllers/reports"
	templateController "toolroom/internal/controllers/templates"

	"github.com/gofiber/fiber/v2"
)

var validationErrors = []error{
	planController.ErrValidation,
	plannerController.ErrValidation,
	reportController.ErrValidation,
	templateController.ErrValidation,
	machineController.ErrValidation,
	employeeController.ErrValidation,
}

var notFoundErrors = []error{
	planController.ErrNotFound,
	plannerController.ErrNotFound,
	templateController.ErrNotFound,
	machineController.ErrNotFound,
	employeeController.ErrNotFound,
}

// respondError maps controller sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with the generic fallback message so internals never
// leak to clients.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if errors.Is(err, planController.ErrInvalidState) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
