package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResearchPaper is a published paper credited to a college.
type ResearchPaper struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Graduate is a notable alumnus shown on the college page.
type Graduate struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type College struct {
	ID               string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name             string          `gorm:"uniqueIndex;not null" json:"name"`
	Image            string          `gorm:"not null" json:"image"`
	ShortDescription string          `gorm:"size:200;not null" json:"short_description"`
	AdmissionDate    string          `gorm:"not null" json:"admission_date"`
	Rating           float64         `gorm:"default:0;check:rating >= 0 AND rating <= 5" json:"rating"`
	ResearchCount    int             `gorm:"default:0" json:"research_count"`
	ResearchHistory  string          `json:"research_history"`
	ResearchPapers   []ResearchPaper `gorm:"serializer:json" json:"research_papers"`
	Events           []string        `gorm:"serializer:json" json:"events"`
	Sports           []string        `gorm:"serializer:json" json:"sports"`
	Gallery          []string        `gorm:"serializer:json" json:"gallery"`
	Graduates        []Graduate      `gorm:"serializer:json" json:"graduates"`
	Description      string          `json:"description"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (college *College) BeforeCreate(tx *gorm.DB) (err error) {
	if college.ID == "" {
		college.ID = uuid.New().String()
	}
	return
}

func (College) TableName() string {
	return "colleges"
}
