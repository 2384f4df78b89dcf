package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admission is a candidate's application to a college. Duplicate
// applications (same email, same college) are rejected.
type Admission struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	CollegeID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_admission_college_email" json:"college_id"`
	CandidateName string    `gorm:"not null" json:"candidate_name"`
	Subject       string    `gorm:"not null" json:"subject"`
	Email         string    `gorm:"not null;uniqueIndex:idx_admission_college_email" json:"email"`
	Phone         string    `gorm:"not null" json:"phone"`
	Address       string    `gorm:"not null" json:"address"`
	DateOfBirth   time.Time `gorm:"not null" json:"date_of_birth"`
	Image         string    `gorm:"not null" json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Association
	College *College `gorm:"foreignKey:CollegeID" json:"college,omitempty"`
}

func (admission *Admission) BeforeCreate(tx *gorm.DB) (err error) {
	if admission.ID == "" {
		admission.ID = uuid.New().String()
	}
	return
}

func (Admission) TableName() string {
	return "admissions"
}
