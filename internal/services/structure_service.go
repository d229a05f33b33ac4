package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/trovestudio/ffetrack/internal/catalog"
	"github.com/trovestudio/ffetrack/internal/models"
	"gorm.io/gorm"
)

// CategoryInput carries the client-supplied fields for creating a category.
type CategoryInput struct {
	RoomID      string `json:"room_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	OrderIndex  int    `json:"order_index,omitempty"`
}

// SubcategoryInput carries the client-supplied fields for creating a
// subcategory.
type SubcategoryInput struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	OrderIndex  int    `json:"order_index,omitempty"`
}

// CreateCategory adds an empty category to a room. Creation is
// idempotent on (room_id, name): if the category already exists the
// existing row is returned unchanged.
func CreateCategory(db *gorm.DB, input CategoryInput) (*models.Category, error) {
	if input.RoomID == "" || input.Name == "" {
		return nil, validationf("category requires room_id and name")
	}

	var category models.Category

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := requireRoom(tx, input.RoomID); err != nil {
			return err
		}

		return tx.Where(models.Category{RoomID: input.RoomID, Name: input.Name}).
			Attrs(models.Category{
				CategoryID:  uuid.NewString(),
				Description: input.Description,
				Color:       input.Color,
				OrderIndex:  input.OrderIndex,
			}).
			FirstOrCreate(&category).Error
	})

	if err != nil {
		return nil, err
	}

	if category.Subcategories == nil {
		category.Subcategories = []models.Subcategory{}
	}
	return &category, nil
}

// CreateComprehensiveCategory adds a category to a room seeded from the
// catalog's standalone template, including subcategories and their
// template items. Unknown category names produce an empty category.
func CreateComprehensiveCategory(db *gorm.DB, input CategoryInput) (*models.Category, error) {
	if input.RoomID == "" || input.Name == "" {
		return nil, validationf("category requires room_id and name")
	}

	var categoryID string

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := requireRoom(tx, input.RoomID); err != nil {
			return err
		}

		tmpl := catalog.ForCategory(input.Name)

		color := input.Color
		if color == "" {
			color = tmpl.Color
		}

		var category models.Category
		if err := tx.Where(models.Category{RoomID: input.RoomID, Name: input.Name}).
			Attrs(models.Category{
				CategoryID:  uuid.NewString(),
				Description: input.Description,
				Color:       color,
				OrderIndex:  input.OrderIndex,
			}).
			FirstOrCreate(&category).Error; err != nil {
			return err
		}
		categoryID = category.CategoryID

		for si, sub := range tmpl.Subcategories {
			var subcategory models.Subcategory
			if err := tx.Where(models.Subcategory{CategoryID: category.CategoryID, Name: sub.Name}).
				Attrs(models.Subcategory{
					SubcategoryID: uuid.NewString(),
					OrderIndex:    si,
				}).
				FirstOrCreate(&subcategory).Error; err != nil {
				return err
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

		return nil
	})

	if err != nil {
		return nil, err
	}

	return GetCategory(db, categoryID)
}

// GetCategory returns one category with its subcategory/item tree.
func GetCategory(db *gorm.DB, categoryID string) (*models.Category, error) {
	var category models.Category
	err := silent(db).
		Preload("Subcategories", orderedByIndex).
		Preload("Subcategories.Items", orderedByIndex).
		Where("category_id = ?", categoryID).
		First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("category '%s'", categoryID)
		}
		return nil, err
	}

	return &category, nil
}

// CreateSubcategory adds an empty subcategory to a category, idempotent
// on (category_id, name).
func CreateSubcategory(db *gorm.DB, input SubcategoryInput) (*models.Subcategory, error) {
	if input.CategoryID == "" || input.Name == "" {
		return nil, validationf("subcategory requires category_id and name")
	}

	var subcategory models.Subcategory

	err := db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("category_id = ?", input.CategoryID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("category '%s'", input.CategoryID)
			}
			return err
		}

		return tx.Where(models.Subcategory{CategoryID: input.CategoryID, Name: input.Name}).
			Attrs(models.Subcategory{
				SubcategoryID: uuid.NewString(),
				Description:   input.Description,
				Color:         input.Color,
				OrderIndex:    input.OrderIndex,
			}).
			FirstOrCreate(&subcategory).Error
	})

	if err != nil {
		return nil, err
	}

	if subcategory.Items == nil {
		subcategory.Items = []models.Item{}
	}
	return &subcategory, nil
}

// DeleteCategory removes a category and everything beneath it,
// returning the count of deleted rows.
func DeleteCategory(db *gorm.DB, categoryID string) (int64, error) {
	var affected int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("category_id = ?", categoryID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("category '%s'", categoryID)
			}
			return err
		}

		n, err := deleteCategoryCascade(tx, categoryID)
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

// DeleteSubcategory removes a subcategory and its items, returning the
// count of deleted rows.
func DeleteSubcategory(db *gorm.DB, subcategoryID string) (int64, error) {
	var affected int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var subcategory models.Subcategory
		if err := tx.Where("subcategory_id = ?", subcategoryID).First(&subcategory).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("subcategory '%s'", subcategoryID)
			}
			return err
		}

		n, err := deleteSubcategoryCascade(tx, subcategoryID)
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

// deleteCategoryCascade deletes a category's subcategories and items,
// then the category row.
func deleteCategoryCascade(tx *gorm.DB, categoryID string) (int64, error) {
	var affected int64

	var subcategoryIDs []string
	if err := tx.Model(&models.Subcategory{}).Where("category_id = ?", categoryID).
		Pluck("subcategory_id", &subcategoryIDs).Error; err != nil {
		return 0, err
	}

	for _, subcategoryID := range subcategoryIDs {
		n, err := deleteSubcategoryCascade(tx, subcategoryID)
		if err != nil {
			return 0, err
		}
		affected += n
	}

	result := tx.Where("category_id = ?", categoryID).Delete(&models.Category{})
	if result.Error != nil {
		return 0, result.Error
	}
	affected += result.RowsAffected

	return affected, nil
}

// deleteSubcategoryCascade deletes a subcategory's items, then the
// subcategory row.
func deleteSubcategoryCascade(tx *gorm.DB, subcategoryID string) (int64, error) {
	var affected int64

	result := tx.Where("subcategory_id = ?", subcategoryID).Delete(&models.Item{})
	if result.Error != nil {
		return 0, result.Error
	}
	affected += result.RowsAffected

	result = tx.Where("subcategory_id = ?", subcategoryID).Delete(&models.Subcategory{})
	if result.Error != nil {
		return 0, result.Error
	}
	affected += result.RowsAffected

	return affected, nil
}

// requireRoom verifies a room id exists inside a transaction.
func requireRoom(tx *gorm.DB, roomID string) error {
	var room models.Room
	if err := tx.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("room '%s'", roomID)
		}
		return err
	}
	return nil
}
