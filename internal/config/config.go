package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Vendor-page scraper service (optional collaborator)
	ScraperURL       string
	ScraperTimeoutMS int

	// Authorizer configuration (optional; auth middleware passes
	// everything through when AUTHZ_URL is unset)
	AuthzURL      string
	AuthzClientID string
}

// Load loads configuration from environment variables, reading a .env
// file first when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 10),
		ScraperURL:        getEnv("SCRAPER_URL", ""),
		ScraperTimeoutMS:  getEnvAsInt("SCRAPER_TIMEOUT_MS", 8000),
		AuthzURL:          getEnv("AUTHZ_URL", ""),
		AuthzClientID:     getEnv("AUTHZ_CLIENT_ID", ""),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required for %s", cfg.DBType)
	}
	if cfg.AuthzURL != "" && cfg.AuthzClientID == "" {
		return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required when AUTHZ_URL is set")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
