package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/trovestudio/ffetrack/internal/catalog"
	"github.com/trovestudio/ffetrack/internal/models"
	"gorm.io/gorm"
)

// RoomInput carries the client-supplied fields for creating a room.
// AutoPopulate defaults to true; an explicit false always forces a
// fully empty room (the transfer engine relies on this).
type RoomInput struct {
	ProjectID    string `json:"project_id"`
	Name         string `json:"name"`
	SheetType    string `json:"sheet_type"`
	Description  string `json:"description,omitempty"`
	Color        string `json:"color,omitempty"`
	OrderIndex   int    `json:"order_index,omitempty"`
	AutoPopulate *bool  `json:"auto_populate,omitempty"`
}

// CreateRoom stores a new room and applies the sheet-type policy:
// walkthrough rooms get the full catalog template, checklist and ffe
// rooms get the category/subcategory structure with zero items, and
// auto_populate=false yields an empty room regardless of sheet type.
func CreateRoom(db *gorm.DB, input RoomInput) (*models.Room, error) {
	if input.ProjectID == "" || input.Name == "" {
		return nil, validationf("room requires project_id and name")
	}
	if !models.ValidSheetType(input.SheetType) {
		return nil, policyf("unrecognized sheet_type '%s'", input.SheetType)
	}

	autoPopulate := true
	if input.AutoPopulate != nil {
		autoPopulate = *input.AutoPopulate
	}

	var room models.Room

	err := db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Where("project_id = ?", input.ProjectID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("project '%s'", input.ProjectID)
			}
			return err
		}

		room = models.Room{
			RoomID:      uuid.NewString(),
			ProjectID:   input.ProjectID,
			Name:        input.Name,
			SheetType:   input.SheetType,
			Description: input.Description,
			Color:       input.Color,
			OrderIndex:  input.OrderIndex,
		}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}

		if !autoPopulate {
			return nil
		}

		// Walkthrough sheets are pre-filled for the initial client
		// walk-through; checklist/ffe sheets receive structure only so
		// items arrive exclusively via transfer or manual entry.
		includeItems := input.SheetType == models.SheetWalkthrough
		return populateRoom(tx, &room, includeItems)
	})

	if err != nil {
		return nil, err
	}

	return GetRoom(db, room.RoomID)
}

// populateRoom seeds a room from the catalog template for its name.
// An unknown room name resolves to an empty template and seeds nothing.
func populateRoom(tx *gorm.DB, room *models.Room, includeItems bool) error {
	tmpl := catalog.ForRoom(room.Name)

	for ci, cat := range tmpl.Categories {
		category := models.Category{
			CategoryID: uuid.NewString(),
			RoomID:     room.RoomID,
			Name:       cat.Name,
			Color:      cat.Color,
			OrderIndex: ci,
		}
		if err := tx.Create(&category).Error; err != nil {
			return err
		}

		for si, sub := range cat.Subcategories {
			subcategory := models.Subcategory{
				SubcategoryID: uuid.NewString(),
				CategoryID:    category.CategoryID,
				Name:          sub.Name,
				OrderIndex:    si,
			}
			if err := tx.Create(&subcategory).Error; err != nil {
				return err
			}

			if !includeItems {
				continue
			}
			for ii, item := range sub.Items {
				row := models.Item{
					ItemID:        uuid.NewString(),
					SubcategoryID: subcategory.SubcategoryID,
					Name:          item.Name,
					Quantity:      1,
					FinishColor:   item.FinishColor,
					OrderIndex:    ii,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// GetRoom assembles one room with its full category/subcategory/item tree.
func GetRoom(db *gorm.DB, roomID string) (*models.Room, error) {
	var room models.Room
	err := silent(db).
		Preload("Categories", orderedByIndex).
		Preload("Categories.Subcategories", orderedByIndex).
		Preload("Categories.Subcategories.Items", orderedByIndex).
		Where("room_id = ?", roomID).
		First(&room).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("room '%s'", roomID)
		}
		return nil, err
	}

	return &room, nil
}

// DeleteRoom removes a room and every category, subcategory and item
// beneath it. Returns the count of deleted rows across all levels.
func DeleteRoom(db *gorm.DB, roomID string) (int64, error) {
	var affected int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("room '%s'", roomID)
			}
			return err
		}

		n, err := deleteRoomCascade(tx, roomID)
		if err != nil {
			return err
		}
		affected = n
		return nil
	})

	if err != nil {
		return 0, err
	}
	return affected, nil
}

// deleteRoomCascade deletes a room's descendants bottom-up, then the
// room itself. Explicit deletes rather than relying on FK cascade so
// the semantics hold on every supported dialect, and so the affected
// count is exact.
func deleteRoomCascade(tx *gorm.DB, roomID string) (int64, error) {
	var affected int64

	var categoryIDs []string
	if err := tx.Model(&models.Category{}).Where("room_id = ?", roomID).
		Pluck("category_id", &categoryIDs).Error; err != nil {
		return 0, err
	}

	for _, categoryID := range categoryIDs {
		n, err := deleteCategoryCascade(tx, categoryID)
		if err != nil {
			return 0, err
		}
		affected += n
	}

	result := tx.Where("room_id = ?", roomID).Delete(&models.Room{})
	if result.Error != nil {
		return 0, result.Error
	}
	affected += result.RowsAffected

	return affected, nil
}

// FlattenItems returns every item in the room's tree in traversal
// order. All item counting and filtering goes through this one helper
// so cascade and transfer accounting cannot drift between call sites.
func FlattenItems(room *models.Room) []models.Item {
	var items []models.Item
	for _, category := range room.Categories {
		for _, subcategory := range category.Subcategories {
			items = append(items, subcategory.Items...)
		}
	}
	return items
}
