package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends the standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, "not_found")
}

// ValidationErrorResponse sends a 400 for malformed or incomplete input
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusBadRequest, "validation")
}

// PolicyViolationResponse sends a 422 for requests rejected before any
// mutation (empty transfer selection, unknown sheet type)
func PolicyViolationResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusUnprocessableEntity, "policy")
}

// MutationSuccessResponse sends a success response for mutations (POST/DELETE)
func MutationSuccessResponse(c *fiber.Ctx, affectedRows int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Success",
		"ok":           true,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"affectedRows": affectedRows,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	Timestamp    string `json:"timestamp"`
	AffectedRows int64  `json:"affectedRows"`
}
