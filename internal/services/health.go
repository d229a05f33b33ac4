package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/trovestudio/ffetrack/internal/config"
	"github.com/trovestudio/ffetrack/internal/scrape"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Scraper      string            `json:"scraper"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service.
// The scraper is an optional dependency: "disabled" does not make the
// service unhealthy, "unreachable" does.
func HealthCheck(cfg *config.Config, db *gorm.DB, scraper *scrape.Client) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	if !scraper.Enabled() {
		result.Scraper = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := scraper.Ping(ctx); err != nil {
			result.Status = "unhealthy"
			result.Scraper = "unreachable"
			result.Details["scraper_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Scraper ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; Scraper ping failed: %v", err)
			}
			log.Printf("Health check failed - scraper ping: %v", err)
		} else {
			result.Scraper = "ok"
			result.Details["scraper_url"] = cfg.ScraperURL
		}
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
