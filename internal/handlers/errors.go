package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/apperrors"
)

const InvalidIDError = "invalid id"

// respondError maps a domain error onto its HTTP status and the common
// error body shape. Anything outside the taxonomy is a server error.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
		expiredErr    *apperrors.ExpiredError
	)
	switch {
	case errors.As(err, &validationErr):
		status = fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = fiber.StatusNotFound
	case errors.As(err, &conflictErr):
		status = fiber.StatusConflict
	case errors.As(err, &expiredErr):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"error": true, "message": err.Error(),
	})
}

// badRequest writes a 400 with the common error body shape.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": true, "message": message,
	})
}
