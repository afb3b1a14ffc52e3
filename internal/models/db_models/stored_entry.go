package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoredEntry is one row of the key->JSON store backing preferences and saved
// plans. Values are the canonical JSON serialization of the entity.
type StoredEntry struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt int64
}

func (e *StoredEntry) BeforeSave(tx *gorm.DB) error {
	e.UpdatedAt = time.Now().Unix()
	return nil
}
