package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/trovestudio/ffetrack/internal/models"
	"github.com/trovestudio/ffetrack/internal/scrape"
	"github.com/trovestudio/ffetrack/internal/types"
	"github.com/trovestudio/ffetrack/internal/vocab"
	"gorm.io/gorm"
)

// ItemInput carries the client-supplied fields for creating an item.
// Quantity and Cost tolerate string forms since spreadsheet imports
// send them quoted.
type ItemInput struct {
	SubcategoryID  string            `json:"subcategory_id"`
	Name           string            `json:"name"`
	Quantity       types.FlexUint64  `json:"quantity,omitempty"`
	Size           string            `json:"size,omitempty"`
	Vendor         string            `json:"vendor,omitempty"`
	SKU            string            `json:"sku,omitempty"`
	Cost           types.FlexFloat64 `json:"cost,omitempty"`
	Link           string            `json:"link,omitempty"`
	FinishColor    string            `json:"finish_color,omitempty"`
	Status         string            `json:"status,omitempty"`
	Carrier        string            `json:"carrier,omitempty"`
	TrackingNumber string            `json:"tracking_number,omitempty"`
	Remarks        string            `json:"remarks,omitempty"`
	OrderIndex     int               `json:"order_index,omitempty"`
}

// ItemUpdate carries partial-update fields. Pointer fields distinguish
// "not sent" from "set to blank/zero".
type ItemUpdate struct {
	Name           *string            `json:"name,omitempty"`
	Quantity       *types.FlexUint64  `json:"quantity,omitempty"`
	Size           *string            `json:"size,omitempty"`
	Vendor         *string            `json:"vendor,omitempty"`
	SKU            *string            `json:"sku,omitempty"`
	Cost           *types.FlexFloat64 `json:"cost,omitempty"`
	Link           *string            `json:"link,omitempty"`
	FinishColor    *string            `json:"finish_color,omitempty"`
	Status         *string            `json:"status,omitempty"`
	Carrier        *string            `json:"carrier,omitempty"`
	TrackingNumber *string            `json:"tracking_number,omitempty"`
	Remarks        *string            `json:"remarks,omitempty"`
	OrderIndex     *int               `json:"order_index,omitempty"`
}

// CreateItem adds an item beneath an existing subcategory. When a
// scraper client is supplied and the input carries a product link,
// blank fields are autofilled from the scraped page; explicit input
// always wins over scraped values.
func CreateItem(ctx context.Context, db *gorm.DB, scraper *scrape.Client, input ItemInput) (*models.Item, error) {
	if input.SubcategoryID == "" {
		return nil, validationf("item requires subcategory_id")
	}
	if input.Name == "" && input.Link == "" {
		return nil, validationf("item requires a name or a product link")
	}

	warnUnknownVocab(input.Status, input.Carrier)

	item := models.Item{
		ItemID:         uuid.NewString(),
		SubcategoryID:  input.SubcategoryID,
		Name:           input.Name,
		Quantity:       input.Quantity.Uint64(),
		Size:           input.Size,
		Vendor:         input.Vendor,
		SKU:            input.SKU,
		Cost:           input.Cost.Float64(),
		Link:           input.Link,
		FinishColor:    input.FinishColor,
		Status:         input.Status,
		Carrier:        input.Carrier,
		TrackingNumber: input.TrackingNumber,
		Remarks:        input.Remarks,
		OrderIndex:     input.OrderIndex,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	if input.Link != "" && scraper.Enabled() {
		autofillFromScrape(ctx, scraper, &item)
	}
	if item.Name == "" {
		return nil, validationf("item name could not be determined from the link")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var subcategory models.Subcategory
		if err := tx.Where("subcategory_id = ?", input.SubcategoryID).First(&subcategory).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("subcategory '%s'", input.SubcategoryID)
			}
			return err
		}
		return tx.Create(&item).Error
	})

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// autofillFromScrape fills only blank fields; scrape failures are
// logged and ignored so item creation never depends on vendor sites.
func autofillFromScrape(ctx context.Context, scraper *scrape.Client, item *models.Item) {
	info, err := scraper.Lookup(ctx, item.Link)
	if err != nil {
		log.Printf("Scrape failed for %s: %v", item.Link, err)
		return
	}
	if info == nil {
		return
	}

	if item.Name == "" {
		item.Name = info.Name
	}
	if item.Vendor == "" {
		item.Vendor = info.Vendor
	}
	if item.SKU == "" {
		item.SKU = info.SKU
	}
	if item.Cost == 0 {
		item.Cost = info.Cost.Float64()
	}
	if item.Size == "" {
		item.Size = info.Size
	}
	if item.FinishColor == "" {
		item.FinishColor = info.Finish
	}
}

// GetItem returns one item by id.
func GetItem(db *gorm.DB, itemID string) (*models.Item, error) {
	var item models.Item
	if err := db.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("item '%s'", itemID)
		}
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies the non-nil fields of the update to an existing
// item and returns the refreshed row.
func UpdateItem(db *gorm.DB, itemID string, update ItemUpdate) (*models.Item, error) {
	var item models.Item
	if err := db.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("item '%s'", itemID)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Name != nil {
		if *update.Name == "" {
			return nil, validationf("item name cannot be blank")
		}
		updates["name"] = *update.Name
	}
	if update.Quantity != nil {
		updates["quantity"] = update.Quantity.Uint64()
	}
	if update.Size != nil {
		updates["size"] = *update.Size
	}
	if update.Vendor != nil {
		updates["vendor"] = *update.Vendor
	}
	if update.SKU != nil {
		updates["sku"] = *update.SKU
	}
	if update.Cost != nil {
		updates["cost"] = update.Cost.Float64()
	}
	if update.Link != nil {
		updates["link"] = *update.Link
	}
	if update.FinishColor != nil {
		updates["finish_color"] = *update.FinishColor
	}
	if update.Status != nil {
		warnUnknownVocab(*update.Status, "")
		updates["status"] = *update.Status
	}
	if update.Carrier != nil {
		warnUnknownVocab("", *update.Carrier)
		updates["carrier"] = *update.Carrier
	}
	if update.TrackingNumber != nil {
		updates["tracking_number"] = *update.TrackingNumber
	}
	if update.Remarks != nil {
		updates["remarks"] = *update.Remarks
	}
	if update.OrderIndex != nil {
		updates["order_index"] = *update.OrderIndex
	}

	if len(updates) > 0 {
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return GetItem(db, itemID)
}

// DeleteItem removes one item, returning the affected row count.
func DeleteItem(db *gorm.DB, itemID string) (int64, error) {
	result := db.Where("item_id = ?", itemID).Delete(&models.Item{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, notFoundf("item '%s'", itemID)
	}
	return result.RowsAffected, nil
}

// warnUnknownVocab logs off-vocabulary status/carrier values. They are
// stored as-is; the vocabulary is advisory so imported data survives.
func warnUnknownVocab(status, carrier string) {
	if !vocab.ValidStatus(status) {
		log.Printf("Item status %q is outside the known vocabulary", status)
	}
	if !vocab.ValidCarrier(carrier) {
		log.Printf("Item carrier %q is outside the known vocabulary", carrier)
	}
}
