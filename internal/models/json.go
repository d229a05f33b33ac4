package models

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON backs the free-form project client_info blob. It wraps
// gorm.io/datatypes.JSON so the column type can be picked per dialect.
type JSON struct {
	datatypes.JSON
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType maps the column to each supported dialect. SQL Server
// has no json type, so it falls back to NVARCHAR(MAX).
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
