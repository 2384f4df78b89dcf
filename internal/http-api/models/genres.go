package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Genre struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

func (genre *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if genre.ID == "" {
		genre.ID = uuid.New().String()
	}
	return
}

func (Genre) TableName() string {
	return "genres"
}
