package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/trovestudio/ffetrack/internal/models"
	"github.com/trovestudio/ffetrack/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// TransferInput selects items from a source room and names the
// destination sheet they move to. The destination room is resolved
// within the source room's project and created on demand. ItemIDs
// accepts a single id or an array.
type TransferInput struct {
	SourceRoomID string                 `json:"source_room_id"`
	ItemIDs      types.FlexList[string] `json:"item_ids"`
	SheetType    string                 `json:"sheet_type"`
	RoomName     string                 `json:"room_name,omitempty"`
}

// TransferFailure records one item that could not be transferred.
type TransferFailure struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// TransferResult reports the destination room tree plus per-item
// accounting. TransferredCount always equals the number of items
// created in the destination.
type TransferResult struct {
	Room             *models.Room      `json:"room"`
	TransferredCount int               `json:"transferred_count"`
	FailedItems      []TransferFailure `json:"failed_items"`
}

// Default item statuses stamped on arrival, by destination sheet type.
var transferStatusDefaults = map[string]string{
	models.SheetChecklist:   "PICKED",
	models.SheetFFE:         "APPROVED",
	models.SheetWalkthrough: "TO BE SELECTED",
}

// Transfer copies a selection of items from a source room into a
// destination sheet in the same project. Source items are left
// untouched. The destination room and the category/subcategory path of
// each item are created on demand without catalog auto-population.
// Items that cannot be resolved are skipped and reported; everything
// else commits atomically.
func Transfer(db *gorm.DB, input TransferInput) (*TransferResult, error) {
	if input.SourceRoomID == "" {
		return nil, validationf("transfer requires source_room_id")
	}
	if !models.ValidSheetType(input.SheetType) {
		return nil, policyf("unrecognized sheet_type '%s'", input.SheetType)
	}

	itemIDs := dedupe(input.ItemIDs.Slice())
	if len(itemIDs) == 0 {
		return nil, policyf("transfer requires a non-empty item selection")
	}

	result := &TransferResult{FailedItems: []TransferFailure{}}
	var destRoomID string

	err := db.Transaction(func(tx *gorm.DB) error {
		var source models.Room
		if err := tx.Where("room_id = ?", input.SourceRoomID).First(&source).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("room '%s'", input.SourceRoomID)
			}
			return err
		}

		dest, err := resolveDestinationRoom(tx, &source, input)
		if err != nil {
			return err
		}
		destRoomID = dest.RoomID

		status := transferStatusDefaults[input.SheetType]
		paths := newStructureCache(tx, dest.RoomID)

		for _, itemID := range itemIDs {
			item, category, subcategory, fail := resolveSourceItem(tx, input.SourceRoomID, itemID)
			if fail != nil {
				result.FailedItems = append(result.FailedItems, *fail)
				continue
			}

			destSubID, err := paths.resolve(category, subcategory)
			if err != nil {
				return err
			}

			copyRow := models.Item{
				ItemID:        uuid.NewString(),
				SubcategoryID: destSubID,
				Name:          item.Name,
				Quantity:      item.Quantity,
				Size:          item.Size,
				Vendor:        item.Vendor,
				SKU:           item.SKU,
				Cost:          item.Cost,
				Link:          item.Link,
				FinishColor:   item.FinishColor,
				Status:        status,
				OrderIndex:    paths.nextOrderIndex(destSubID),
			}
			if err := tx.Create(&copyRow).Error; err != nil {
				return err
			}
			result.TransferredCount++
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	room, err := GetRoom(db, destRoomID)
	if err != nil {
		return nil, err
	}
	result.Room = room

	return result, nil
}

// resolveDestinationRoom finds or creates the destination sheet within
// the source room's project. The destination is never auto-populated
// and may not be the source room itself.
func resolveDestinationRoom(tx *gorm.DB, source *models.Room, input TransferInput) (*models.Room, error) {
	name := input.RoomName
	if name == "" {
		name = source.Name
	}

	lookup := tx
	if tx.Dialector.Name() == "mysql" {
		lookup = tx.Clauses(hints.UseIndex("idx_room_project_name_sheet"))
	}

	var dest models.Room
	err := lookup.Where("project_id = ? AND name = ? AND sheet_type = ?",
		source.ProjectID, name, input.SheetType).First(&dest).Error

	switch {
	case err == nil:
		if dest.RoomID == source.RoomID {
			return nil, policyf("transfer destination resolves to the source room")
		}
		return &dest, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		dest = models.Room{
			RoomID:     uuid.NewString(),
			ProjectID:  source.ProjectID,
			Name:       name,
			SheetType:  input.SheetType,
			Color:      source.Color,
			OrderIndex: source.OrderIndex,
		}
		if err := tx.Create(&dest).Error; err != nil {
			return nil, err
		}
		return &dest, nil

	default:
		return nil, err
	}
}

// resolveSourceItem loads one selected item and verifies it belongs to
// the source room. Resolution problems become per-item failures rather
// than errors so one bad id cannot sink the whole transfer.
func resolveSourceItem(tx *gorm.DB, sourceRoomID, itemID string) (*models.Item, *models.Category, *models.Subcategory, *TransferFailure) {
	var item models.Item
	if err := tx.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, &TransferFailure{ItemID: itemID, Reason: "item not found"}
		}
		return nil, nil, nil, &TransferFailure{ItemID: itemID, Reason: err.Error()}
	}

	var subcategory models.Subcategory
	if err := tx.Where("subcategory_id = ?", item.SubcategoryID).First(&subcategory).Error; err != nil {
		return nil, nil, nil, &TransferFailure{ItemID: itemID, Reason: "orphaned item"}
	}

	var category models.Category
	if err := tx.Where("category_id = ?", subcategory.CategoryID).First(&category).Error; err != nil {
		return nil, nil, nil, &TransferFailure{ItemID: itemID, Reason: "orphaned item"}
	}

	if category.RoomID != sourceRoomID {
		return nil, nil, nil, &TransferFailure{ItemID: itemID, Reason: "item is not in the source room"}
	}

	return &item, &category, &subcategory, nil
}

// structureCache memoizes the destination category/subcategory rows
// created during a transfer so every item sharing a name path lands in
// the same subcategory.
type structureCache struct {
	tx         *gorm.DB
	roomID     string
	categories map[string]string
	subs       map[string]string
	counts     map[string]int
}

func newStructureCache(tx *gorm.DB, roomID string) *structureCache {
	return &structureCache{
		tx:         tx,
		roomID:     roomID,
		categories: map[string]string{},
		subs:       map[string]string{},
		counts:     map[string]int{},
	}
}

// resolve returns the destination subcategory id for the source item's
// name path, creating category and subcategory rows on first use.
func (c *structureCache) resolve(category *models.Category, subcategory *models.Subcategory) (string, error) {
	catID, ok := c.categories[category.Name]
	if !ok {
		var row models.Category
		err := c.tx.Where(models.Category{RoomID: c.roomID, Name: category.Name}).
			Attrs(models.Category{
				CategoryID: uuid.NewString(),
				Color:      category.Color,
				OrderIndex: category.OrderIndex,
			}).
			FirstOrCreate(&row).Error
		if err != nil {
			return "", err
		}
		catID = row.CategoryID
		c.categories[category.Name] = catID
	}

	subKey := catID + "/" + subcategory.Name
	subID, ok := c.subs[subKey]
	if !ok {
		var row models.Subcategory
		err := c.tx.Where(models.Subcategory{CategoryID: catID, Name: subcategory.Name}).
			Attrs(models.Subcategory{
				SubcategoryID: uuid.NewString(),
				Color:         subcategory.Color,
				OrderIndex:    subcategory.OrderIndex,
			}).
			FirstOrCreate(&row).Error
		if err != nil {
			return "", err
		}
		subID = row.SubcategoryID
		c.subs[subKey] = subID
	}

	return subID, nil
}

// nextOrderIndex hands out order indexes per destination subcategory,
// continuing after any items already present.
func (c *structureCache) nextOrderIndex(subcategoryID string) int {
	n, ok := c.counts[subcategoryID]
	if !ok {
		var existing int64
		c.tx.Model(&models.Item{}).Where("subcategory_id = ?", subcategoryID).Count(&existing)
		n = int(existing)
	}
	c.counts[subcategoryID] = n + 1
	return n
}

// dedupe removes duplicate ids while preserving selection order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
