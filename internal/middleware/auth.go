package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/types"
)

// AuthAdmin validates that the request has admin role authorization.
// When no Authorizer is configured the check is skipped entirely so a
// single-tenant deployment runs without an auth stack.
func AuthAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !services.IsAuthorizerInitialized() {
			return c.Next()
		}
		return authorize(c, []string{"admin"}, "projects.authorization.admin")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, roles []string, errorType string) error {
	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	data, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	if user, ok := data["user"]; ok {
		c.Locals("user", user)
	}

	return c.Next()
}
