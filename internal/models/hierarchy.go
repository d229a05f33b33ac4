package models

import (
	"time"
)

// Category groups subcategories inside a room. The (room_id, name)
// unique index keeps concurrent structure creation from forking state.
type Category struct {
	CategoryID    string        `gorm:"primaryKey;type:char(36)" json:"id"`
	RoomID        string        `gorm:"type:char(36);not null;index:idx_category_room_name,unique" json:"room_id"`
	Name          string        `gorm:"size:255;not null;index:idx_category_room_name,unique" json:"name"`
	Description   string        `gorm:"size:1024;not null;default:''" json:"description"`
	Color         string        `gorm:"size:16;not null;default:''" json:"color"`
	OrderIndex    int           `gorm:"not null;default:0" json:"order_index"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
}

// Subcategory groups items inside a category.
type Subcategory struct {
	SubcategoryID string    `gorm:"primaryKey;type:char(36)" json:"id"`
	CategoryID    string    `gorm:"type:char(36);not null;index:idx_subcategory_category_name,unique" json:"category_id"`
	Name          string    `gorm:"size:255;not null;index:idx_subcategory_category_name,unique" json:"name"`
	Description   string    `gorm:"size:1024;not null;default:''" json:"description"`
	Color         string    `gorm:"size:16;not null;default:''" json:"color"`
	OrderIndex    int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Items         []Item    `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE" json:"items"`
}

// Item is a single furniture/fixture line tracked through the
// procurement lifecycle. Optional string fields are NOT NULL with a
// blank default so they round-trip as "" and never as null.
type Item struct {
	ItemID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	SubcategoryID  string    `gorm:"type:char(36);not null;index" json:"subcategory_id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Quantity       uint64    `gorm:"not null;default:1" json:"quantity"`
	Size           string    `gorm:"size:255;not null;default:''" json:"size"`
	Vendor         string    `gorm:"size:255;not null;default:''" json:"vendor"`
	SKU            string    `gorm:"size:255;not null;default:''" json:"sku"`
	Cost           float64   `gorm:"not null;default:0" json:"cost"`
	Link           string    `gorm:"size:2048;not null;default:''" json:"link"`
	FinishColor    string    `gorm:"size:255;not null;default:''" json:"finish_color"`
	Status         string    `gorm:"size:64;not null;default:''" json:"status"`
	Carrier        string    `gorm:"size:64;not null;default:''" json:"carrier"`
	TrackingNumber string    `gorm:"size:255;not null;default:''" json:"tracking_number"`
	Remarks        string    `gorm:"size:2048;not null;default:''" json:"remarks"`
	OrderIndex     int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName overrides the table name for Category
func (Category) TableName() string {
	return "categories"
}

// TableName overrides the table name for Subcategory
func (Subcategory) TableName() string {
	return "subcategories"
}

// TableName overrides the table name for Item
func (Item) TableName() string {
	return "items"
}
