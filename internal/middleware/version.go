package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// VersionMiddleware parses the X-Api-Version header and stores it in
// context for handlers that branch on client capability.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")

		// Short alias sent by older clients
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals("apiVersion", version)

		return c.Next()
	}
}
