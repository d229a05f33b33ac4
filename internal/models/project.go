package models

import (
	"time"
)

// Project is the root of the hierarchy. Deleting a project cascades to
// every room, category, subcategory and item beneath it.
type Project struct {
	ProjectID   string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	ClientInfo  JSON      `json:"client_info"`
	ProjectType string    `gorm:"size:100;not null;default:''" json:"project_type"`
	Timeline    string    `gorm:"size:255;not null;default:''" json:"timeline"`
	Budget      float64   `gorm:"not null;default:0" json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Rooms       []Room    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"rooms"`
}

// Room is a sheet-typed container of categories. Two rooms in the same
// project may share a name only if their sheet types differ; the unique
// index enforces that, and also makes the transfer engine's
// find-or-create of the destination room fail safe under concurrency.
type Room struct {
	RoomID      string     `gorm:"primaryKey;type:char(36)" json:"id"`
	ProjectID   string     `gorm:"type:char(36);not null;index:idx_room_project_name_sheet,unique" json:"project_id"`
	Name        string     `gorm:"size:255;not null;index:idx_room_project_name_sheet,unique" json:"name"`
	SheetType   string     `gorm:"size:32;not null;index:idx_room_project_name_sheet,unique" json:"sheet_type"`
	Description string     `gorm:"size:1024;not null;default:''" json:"description"`
	Color       string     `gorm:"size:16;not null;default:''" json:"color"`
	OrderIndex  int        `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Categories  []Category `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"categories"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TableName overrides the table name for Room
func (Room) TableName() string {
	return "rooms"
}
