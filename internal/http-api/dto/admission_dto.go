package dto

import (
	"time"

	"bookworm/internal/http-api/models"
)

type CreateAdmissionDTO struct {
	CollegeID     string `json:"college_id" binding:"required,uuid"`
	CandidateName string `json:"candidate_name" binding:"required"`
	Subject       string `json:"subject" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	DateOfBirth   string `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
	Image         string `json:"image" binding:"required"`
}

func (d CreateAdmissionDTO) ToModel() (models.Admission, error) {
	dob, err := time.Parse("2006-01-02", d.DateOfBirth)
	if err != nil {
		return models.Admission{}, err
	}
	return models.Admission{
		CollegeID:     d.CollegeID,
		CandidateName: d.CandidateName,
		Subject:       d.Subject,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address,
		DateOfBirth:   dob,
		Image:         d.Image,
	}, nil
}
