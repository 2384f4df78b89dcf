package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"uniqueIndex;not null" json:"title"`
	Author      string    `gorm:"not null;index" json:"author"`
	Description string    `gorm:"not null" json:"description"`
	Summary     string    `gorm:"not null" json:"summary"`
	CoverImage  string    `gorm:"not null" json:"cover_image"`
	GenreID     string    `gorm:"type:uuid;not null;index" json:"genre_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Association
	Genre *Genre `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
}

func (book *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
