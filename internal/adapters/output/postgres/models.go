package postgres

import (
	"time"

	"gorm.io/gorm"
)

// Document struct - a book page or any other string value
type Document struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"type:timestamp"`
}

// TableName func
func (d *Document) TableName() string {
	return "documents"
}

// ListEntry struct - one element of a list such as a session read history.
// The unique index on (list_key, value) gives lists set semantics.
type ListEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	ListKey   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_list_entries_key_value"`
	Value     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_list_entries_key_value"`
	CreatedAt time.Time `gorm:"type:timestamp"`
}

// TableName func
func (e *ListEntry) TableName() string {
	return "list_entries"
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}
	return db.AutoMigrate(&Document{}, &ListEntry{})
}
