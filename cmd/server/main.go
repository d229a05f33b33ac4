package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/trovestudio/ffetrack/internal/config"
	"github.com/trovestudio/ffetrack/internal/database"
	"github.com/trovestudio/ffetrack/internal/handlers"
	"github.com/trovestudio/ffetrack/internal/middleware"
	"github.com/trovestudio/ffetrack/internal/scrape"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/types"

	_ "github.com/trovestudio/ffetrack/docs/api" // Swagger docs
)

// @title FFETrack API
// @version 1.0.0
// @description Interior design project management service: projects, rooms, FF&E item tracking and sheet transfers
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/trovestudio/ffetrack

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

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

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	scraper := scrape.NewClient(cfg.ScraperURL, time.Duration(cfg.ScraperTimeoutMS)*time.Millisecond)
	if scraper.Enabled() {
		log.Printf("Product scraper configured at %s", cfg.ScraperURL)
	} else {
		log.Println("Product scraper not configured, link autofill disabled")
	}

	if cfg.AuthzURL != "" {
		if err := services.InitAuthorizer(cfg, "http", "localhost:"+cfg.Port); err != nil {
			log.Fatalf("Failed to initialize Authorizer: %v", err)
		}
	} else {
		log.Println("Authorizer not configured, admin routes are open")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("ffetrack")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	projectHandler := &handlers.ProjectHandler{DB: db}
	roomHandler := &handlers.RoomHandler{DB: db}
	structureHandler := &handlers.StructureHandler{DB: db}
	itemHandler := &handlers.ItemHandler{DB: db, Scraper: scraper}
	transferHandler := &handlers.TransferHandler{DB: db}
	vocabHandler := &handlers.VocabHandler{}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db, Scraper: scraper}

	// Projects
	api.Get("/projects", projectHandler.ListProjects)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Post("/projects", projectHandler.CreateProject)
	api.Put("/projects/:id", projectHandler.UpdateProject)
	api.Delete("/projects/:id", middleware.AuthAdmin(), projectHandler.DeleteProject)

	// Rooms
	api.Get("/rooms/available", vocabHandler.AvailableRooms)
	api.Get("/rooms/:id", roomHandler.GetRoom)
	api.Post("/rooms", roomHandler.CreateRoom)
	api.Delete("/rooms/:id", middleware.AuthAdmin(), roomHandler.DeleteRoom)

	// Categories and subcategories
	api.Get("/categories/available", structureHandler.AvailableCategories)
	api.Post("/categories", structureHandler.CreateCategory)
	api.Post("/categories/comprehensive", structureHandler.CreateComprehensiveCategory)
	api.Delete("/categories/:id", middleware.AuthAdmin(), structureHandler.DeleteCategory)
	api.Post("/subcategories", structureHandler.CreateSubcategory)
	api.Delete("/subcategories/:id", middleware.AuthAdmin(), structureHandler.DeleteSubcategory)

	// Items
	api.Get("/items/:id", itemHandler.GetItem)
	api.Post("/items", itemHandler.CreateItem)
	api.Put("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)

	// Transfer engine
	api.Post("/transfer", transferHandler.Transfer)

	// Vocabulary
	api.Get("/statuses-enhanced", vocabHandler.Statuses)
	api.Get("/carrier-options", vocabHandler.Carriers)

	// Health
	api.Get("/health", healthHandler.Health)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
