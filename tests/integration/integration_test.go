package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/trovestudio/ffetrack/internal/config"
	"github.com/trovestudio/ffetrack/internal/database"
	"github.com/trovestudio/ffetrack/internal/models"
	"github.com/trovestudio/ffetrack/internal/scrape"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/types"
	"github.com/trovestudio/ffetrack/tests/helpers"
	"gorm.io/gorm"
)

func imageOr(envKey, fallback string) string {
	if img := os.Getenv(envKey); img != "" {
		return img
	}
	return fallback
}

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageOr("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("RoomPopulationPolicy", func(t *testing.T) {
		testRoomPopulationPolicy(t, db)
	})

	t.Run("TransferEngine", func(t *testing.T) {
		testTransferEngine(t, db)
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		testCascadeDelete(t, db)
	})
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageOr("POSTGRES_IMAGE", "postgres:16"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("RoomPopulationPolicy", func(t *testing.T) {
		testRoomPopulationPolicy(t, db)
	})

	t.Run("TransferEngine", func(t *testing.T) {
		testTransferEngine(t, db)
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		testCascadeDelete(t, db)
	})
}

// testRoomPopulationPolicy verifies the sheet-type population rules
// against a real database.
func testRoomPopulationPolicy(t *testing.T, db *gorm.DB) {
	projectID := helpers.CreateTestProject(t, db, "Population Policy House")

	walkthrough, err := services.CreateRoom(db, services.RoomInput{
		ProjectID: projectID,
		Name:      "Kitchen",
		SheetType: models.SheetWalkthrough,
	})
	if err != nil {
		t.Fatalf("Failed to create walkthrough room: %v", err)
	}
	if n := len(services.FlattenItems(walkthrough)); n == 0 {
		t.Error("Expected walkthrough room to auto-populate items")
	}

	checklist, err := services.CreateRoom(db, services.RoomInput{
		ProjectID: projectID,
		Name:      "Kitchen",
		SheetType: models.SheetChecklist,
	})
	if err != nil {
		t.Fatalf("Failed to create checklist room: %v", err)
	}
	if len(checklist.Categories) == 0 {
		t.Error("Expected checklist room to carry catalog structure")
	}
	if n := len(services.FlattenItems(checklist)); n != 0 {
		t.Errorf("Expected checklist room to have zero items, got %d", n)
	}
}

// testTransferEngine runs a walkthrough-to-checklist transfer on a
// real database, including the destination lookup path.
func testTransferEngine(t *testing.T, db *gorm.DB) {
	projectID := helpers.CreateTestProject(t, db, "Transfer House")

	source, err := services.CreateRoom(db, services.RoomInput{
		ProjectID: projectID,
		Name:      "Office",
		SheetType: models.SheetWalkthrough,
	})
	if err != nil {
		t.Fatalf("Failed to create source room: %v", err)
	}

	items := services.FlattenItems(source)
	if len(items) < 3 {
		t.Fatalf("Expected populated source room, got %d items", len(items))
	}
	selection := []string{items[0].ItemID, items[1].ItemID, items[2].ItemID}

	result, err := services.Transfer(db, services.TransferInput{
		SourceRoomID: source.RoomID,
		ItemIDs:      types.FlexList[string](selection),
		SheetType:    models.SheetChecklist,
	})
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	if result.TransferredCount != 3 {
		t.Errorf("Expected 3 transferred, got %d", result.TransferredCount)
	}
	if len(result.FailedItems) != 0 {
		t.Errorf("Expected no failures, got %v", result.FailedItems)
	}
	for _, item := range services.FlattenItems(result.Room) {
		if item.Status != "PICKED" {
			t.Errorf("Item %q: expected status PICKED, got %q", item.Name, item.Status)
		}
	}

	// Second transfer must reuse the destination sheet
	again, err := services.Transfer(db, services.TransferInput{
		SourceRoomID: source.RoomID,
		ItemIDs:      types.FlexList[string]{items[3].ItemID},
		SheetType:    models.SheetChecklist,
	})
	if err != nil {
		t.Fatalf("Second transfer failed: %v", err)
	}
	if again.Room.RoomID != result.Room.RoomID {
		t.Error("Expected second transfer to reuse the checklist room")
	}
}

// testCascadeDelete verifies descendant cleanup without relying on
// database-level foreign key cascades.
func testCascadeDelete(t *testing.T, db *gorm.DB) {
	projectID := helpers.CreateTestProject(t, db, "Cascade House")

	if _, err := services.CreateRoom(db, services.RoomInput{
		ProjectID: projectID,
		Name:      "Kitchen",
		SheetType: models.SheetWalkthrough,
	}); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	affected, err := services.DeleteProject(db, projectID)
	if err != nil {
		t.Fatalf("Failed to delete project: %v", err)
	}
	if affected < 2 {
		t.Errorf("Expected cascade to touch multiple rows, got %d", affected)
	}

	var orphans int64
	err = db.Model(&models.Item{}).
		Joins("JOIN subcategories ON subcategories.subcategory_id = items.subcategory_id").
		Joins("JOIN categories ON categories.category_id = subcategories.category_id").
		Joins("JOIN rooms ON rooms.room_id = categories.room_id").
		Where("rooms.project_id = ?", projectID).
		Count(&orphans).Error
	if err != nil {
		t.Fatalf("Failed to count orphans: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Expected no orphaned items after cascade, got %d", orphans)
	}
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageOr("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:     "mysql",
		DBHost:     host,
		DBPort:     port.Port(),
		DBDatabase: "testdb",
		DBUser:     "testuser",
		DBPassword: "testpass",
		ScraperURL: "http://localhost:9999", // Non-existent service
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check against an unreachable scraper
	scraper := scrape.NewClient(cfg.ScraperURL, 2*time.Second)
	result := services.HealthCheck(cfg, db, scraper)

	// Database should be healthy
	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}

	// Scraper should be unreachable
	if result.Scraper != "unreachable" {
		t.Errorf("Expected scraper to be unreachable, got: %s", result.Scraper)
	}

	// Overall status should be unhealthy
	if result.Status != "unhealthy" {
		t.Errorf("Expected status to be unhealthy, got: %s", result.Status)
	}

	// Disabled scraper must not flip the status
	result = services.HealthCheck(cfg, db, nil)
	if result.Scraper != "disabled" {
		t.Errorf("Expected scraper to be disabled, got: %s", result.Scraper)
	}
	if result.Status != "healthy" {
		t.Errorf("Expected status to be healthy with scraper disabled, got: %s", result.Status)
	}
}
