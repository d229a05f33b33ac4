package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/utils"
)

// serviceError maps service-layer sentinel errors onto the JSON error
// envelope. errorType tags the response with the failing operation.
func serviceError(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		return utils.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, services.ErrPolicyViolation):
		return utils.PolicyViolationResponse(c, err.Error())
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}
