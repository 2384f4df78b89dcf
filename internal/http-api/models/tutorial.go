package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tutorial struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `gorm:"not null" json:"video_url"`
	CreatedBy   string    `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (tutorial *Tutorial) BeforeCreate(tx *gorm.DB) (err error) {
	if tutorial.ID == "" {
		tutorial.ID = uuid.New().String()
	}
	return
}

func (Tutorial) TableName() string {
	return "tutorials"
}
