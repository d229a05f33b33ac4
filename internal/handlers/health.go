package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/config"
	"github.com/trovestudio/ffetrack/internal/scrape"
	"github.com/trovestudio/ffetrack/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the health route
type HealthHandler struct {
	Config  *config.Config
	DB      *gorm.DB
	Scraper *scrape.Client
}

// Health handles GET /api/health
// @Summary Service health
// @Description Report database and scraper connectivity
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.DB, h.Scraper)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
