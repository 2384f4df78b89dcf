package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID               string    `gorm:"primaryKey;type:uuid" json:"id"`
	FirstName        string    `gorm:"not null" json:"first_name"`
	MiddleName       string    `json:"middle_name,omitempty"`
	LastName         string    `gorm:"not null" json:"last_name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Gender           string    `gorm:"not null" json:"gender"` // male | female | other
	DateOfBirth      string    `json:"date_of_birth"`
	ContactNo        string    `gorm:"not null" json:"contact_no"`
	EmergencyContact string    `gorm:"not null" json:"emergency_contact"`
	BloodGroup       string    `json:"blood_group,omitempty"`
	PresentAddress   string    `gorm:"not null" json:"present_address"`
	PermanentAddress string    `gorm:"not null" json:"permanent_address"`
	GuardianName     string    `gorm:"not null" json:"guardian_name"`
	GuardianContact  string    `gorm:"not null" json:"guardian_contact"`
	Active           bool      `gorm:"default:true" json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (student *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	return
}

func (Student) TableName() string {
	return "students"
}
