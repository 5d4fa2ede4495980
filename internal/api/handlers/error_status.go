package handlers

import (
	"FreshKeep-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps service errors onto the HTTP taxonomy:
// validation 400, not-owner 403, unknown id 404, anything else 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotFoodOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidAddedDate),
		errors.Is(err, domain.ErrMissingOwnerEmail),
		errors.Is(err, domain.ErrNoteContentEmpty),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrIDTokenRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidIDToken),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
