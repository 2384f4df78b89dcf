package dto

import (
	"bookworm/internal/http-api/models"
)

type CreateStudentDTO struct {
	FirstName        string `json:"first_name" binding:"required,max=20"`
	MiddleName       string `json:"middle_name"`
	LastName         string `json:"last_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Gender           string `json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth      string `json:"date_of_birth"`
	ContactNo        string `json:"contact_no" binding:"required"`
	EmergencyContact string `json:"emergency_contact" binding:"required"`
	BloodGroup       string `json:"blood_group" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	PresentAddress   string `json:"present_address" binding:"required"`
	PermanentAddress string `json:"permanent_address" binding:"required"`
	GuardianName     string `json:"guardian_name" binding:"required"`
	GuardianContact  string `json:"guardian_contact" binding:"required"`
}

func (d CreateStudentDTO) ToModel() models.Student {
	return models.Student{
		FirstName:        d.FirstName,
		MiddleName:       d.MiddleName,
		LastName:         d.LastName,
		Email:            d.Email,
		Gender:           d.Gender,
		DateOfBirth:      d.DateOfBirth,
		ContactNo:        d.ContactNo,
		EmergencyContact: d.EmergencyContact,
		BloodGroup:       d.BloodGroup,
		PresentAddress:   d.PresentAddress,
		PermanentAddress: d.PermanentAddress,
		GuardianName:     d.GuardianName,
		GuardianContact:  d.GuardianContact,
	}
}
