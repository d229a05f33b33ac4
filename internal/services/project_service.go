package services

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/trovestudio/ffetrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ProjectInput carries the client-supplied fields for creating or
// updating a project.
type ProjectInput struct {
	Name        string                 `json:"name"`
	ClientInfo  map[string]interface{} `json:"client_info,omitempty"`
	ProjectType string                 `json:"project_type,omitempty"`
	Timeline    string                 `json:"timeline,omitempty"`
	Budget      float64                `json:"budget,omitempty"`
}

// CreateProject stores a new project with an empty room list.
func CreateProject(db *gorm.DB, input ProjectInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, validationf("project name is required")
	}

	project := models.Project{
		ProjectID:   uuid.NewString(),
		Name:        input.Name,
		ProjectType: input.ProjectType,
		Timeline:    input.Timeline,
		Budget:      input.Budget,
	}

	if input.ClientInfo != nil {
		raw, err := json.Marshal(input.ClientInfo)
		if err != nil {
			return nil, validationf("client_info is not serializable")
		}
		if err := project.ClientInfo.Scan(raw); err != nil {
			return nil, err
		}
	}

	if err := db.Create(&project).Error; err != nil {
		return nil, err
	}

	project.Rooms = []models.Room{}
	return &project, nil
}

// GetProject assembles the full nested tree: rooms, categories,
// subcategories and items, each level ordered by order_index then name.
// This is the dominant read shape consumed by clients.
func GetProject(db *gorm.DB, projectID string) (*models.Project, error) {
	var project models.Project
	err := silent(db).
		Preload("Rooms", orderedByIndex).
		Preload("Rooms.Categories", orderedByIndex).
		Preload("Rooms.Categories.Subcategories", orderedByIndex).
		Preload("Rooms.Categories.Subcategories.Items", orderedByIndex).
		Where("project_id = ?", projectID).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("project '%s'", projectID)
		}
		return nil, err
	}

	if project.Rooms == nil {
		project.Rooms = []models.Room{}
	}
	return &project, nil
}

// ListProjects returns the project rows without their trees.
func ListProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Order("created_at").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject merges the supplied fields into an existing project.
func UpdateProject(db *gorm.DB, projectID string, input ProjectInput) (*models.Project, error) {
	var project models.Project
	if err := db.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("project '%s'", projectID)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.ProjectType != "" {
		updates["project_type"] = input.ProjectType
	}
	if input.Timeline != "" {
		updates["timeline"] = input.Timeline
	}
	if input.Budget != 0 {
		updates["budget"] = input.Budget
	}
	if input.ClientInfo != nil {
		raw, err := json.Marshal(input.ClientInfo)
		if err != nil {
			return nil, validationf("client_info is not serializable")
		}
		updates["client_info"] = raw
	}

	if len(updates) > 0 {
		if err := db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return GetProject(db, projectID)
}

// DeleteProject removes the project and all descendant rooms,
// categories, subcategories and items. Returns the count of deleted
// rows across all levels so the caller can verify the outcome.
func DeleteProject(db *gorm.DB, projectID string) (int64, error) {
	var affected int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Where("project_id = ?", projectID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("project '%s'", projectID)
			}
			return err
		}

		var rooms []models.Room
		if err := tx.Where("project_id = ?", projectID).Find(&rooms).Error; err != nil {
			return err
		}
		for _, room := range rooms {
			n, err := deleteRoomCascade(tx, room.RoomID)
			if err != nil {
				return err
			}
			affected += n
		}

		result := tx.Delete(&project)
		if result.Error != nil {
			return result.Error
		}
		affected += result.RowsAffected

		return nil
	})

	if err != nil {
		return 0, err
	}
	return affected, nil
}

// orderedByIndex is the shared preload ordering for every hierarchy level.
func orderedByIndex(db *gorm.DB) *gorm.DB {
	return db.Order("order_index, name")
}

// silent returns a session that suppresses SQL logging for the large
// preload reads.
func silent(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}
