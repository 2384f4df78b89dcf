package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ShelfWant    = "want"
	ShelfReading = "reading"
	ShelfRead    = "read"
)

// LibraryEntry shelves a book for a user. At most one entry per
// (user, book) pair.
type LibraryEntry struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;uniqueIndex:idx_library_user_book" json:"user_id"`
	BookID     string     `gorm:"type:uuid;not null;uniqueIndex:idx_library_user_book" json:"book_id"`
	Shelf      string     `gorm:"default:'want';not null;index" json:"shelf"` // want | reading | read
	Progress   int        `gorm:"default:0;check:progress >= 0 AND progress <= 100" json:"progress"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (entry *LibraryEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return
}

func (LibraryEntry) TableName() string {
	return "library_entries"
}
