package helpers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/trovestudio/ffetrack/internal/database"
	"github.com/trovestudio/ffetrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with the full
// schema migrated. The pure-Go driver keeps unit tests cgo-free.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// One connection only: every pooled connection to :memory: would
	// otherwise see its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestProject creates a project row and returns its id
func CreateTestProject(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()

	project := models.Project{
		ProjectID: uuid.NewString(),
		Name:      name,
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	return project.ProjectID
}

// CreateTestRoom creates a bare room row and returns its id
func CreateTestRoom(t *testing.T, db *gorm.DB, projectID, name, sheetType string) string {
	t.Helper()

	room := models.Room{
		RoomID:    uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		SheetType: sheetType,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	return room.RoomID
}

// CreateTestStructure creates a category and subcategory in a room,
// returning the subcategory id
func CreateTestStructure(t *testing.T, db *gorm.DB, roomID, categoryName, subcategoryName string) string {
	t.Helper()

	category := models.Category{
		CategoryID: uuid.NewString(),
		RoomID:     roomID,
		Name:       categoryName,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	subcategory := models.Subcategory{
		SubcategoryID: uuid.NewString(),
		CategoryID:    category.CategoryID,
		Name:          subcategoryName,
	}
	if err := db.Create(&subcategory).Error; err != nil {
		t.Fatalf("Failed to create subcategory: %v", err)
	}

	return subcategory.SubcategoryID
}

// CreateTestItem creates an item row and returns its id
func CreateTestItem(t *testing.T, db *gorm.DB, subcategoryID, name string) string {
	t.Helper()

	item := models.Item{
		ItemID:        uuid.NewString(),
		SubcategoryID: subcategoryID,
		Name:          name,
		Quantity:      1,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	return item.ItemID
}
