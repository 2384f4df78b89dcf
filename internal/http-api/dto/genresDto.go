package dto

import (
	"bookworm/internal/http-api/models"
)

// CreateGenreDTO used for POST /api/v1/genres
type CreateGenreDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateGenreDTO used for PUT /api/v1/genres/:id (partial updates allowed)
type UpdateGenreDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type GenreResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GenreNameResponse is the slim shape for select dropdowns.
type GenreNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d CreateGenreDTO) ToModel() models.Genre {
	return models.Genre{
		Name:        d.Name,
		Description: d.Description,
	}
}

func (d UpdateGenreDTO) ApplyTo(g *models.Genre) {
	if d.Name != nil {
		g.Name = *d.Name
	}
	if d.Description != nil {
		g.Description = *d.Description
	}
}

func FromModelToGenreResponse(g models.Genre) GenreResponse {
	return GenreResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
}
