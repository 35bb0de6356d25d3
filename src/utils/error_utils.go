// error_utils.go
package utils

import (
	"QuickTech-Backend/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleCodedError is HandleError plus a machine-readable code.
func HandleCodedError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
		Code:    code,
	})
}

// HandleValidation renders a 400 with one entry per violated field constraint.
func HandleValidation(c *fiber.Ctx, errs []models.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
		Message: "Validation error",
		Errors:  errs,
	})
}

// HandleInvalidBody reports a body that could not be decoded as a single root-level field error.
func HandleInvalidBody(c *fiber.Ctx) error {
	return HandleValidation(c, []models.FieldError{{Path: "", Message: "Invalid input"}})
}
