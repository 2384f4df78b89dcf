package dto

import (
	"bookworm/internal/http-api/models"
)

type CreateTutorialDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url" binding:"required,url"`
}

type UpdateTutorialDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
}

func (d CreateTutorialDTO) ToModel(createdBy string) models.Tutorial {
	return models.Tutorial{
		Title:       d.Title,
		Description: d.Description,
		VideoURL:    d.VideoURL,
		CreatedBy:   createdBy,
	}
}

func (d UpdateTutorialDTO) ApplyTo(t *models.Tutorial) {
	if d.Title != nil {
		t.Title = *d.Title
	}
	if d.Description != nil {
		t.Description = *d.Description
	}
	if d.VideoURL != nil {
		t.VideoURL = *d.VideoURL
	}
}
