package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/trovestudio/ffetrack/internal/config"
	"github.com/trovestudio/ffetrack/internal/database"
	"github.com/trovestudio/ffetrack/internal/scrape"
	"github.com/trovestudio/ffetrack/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	scraper := scrape.NewClient(cfg.ScraperURL, time.Duration(cfg.ScraperTimeoutMS)*time.Millisecond)

	result := services.HealthCheck(cfg, db, scraper)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
