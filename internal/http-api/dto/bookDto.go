package dto

import (
	"time"

	"bookworm/internal/http-api/models"
)

// CreateBookDTO used for POST /api/v1/books
type CreateBookDTO struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	GenreID     string `json:"genre_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required"`
	Summary     string `json:"summary" binding:"required"`
	CoverImage  string `json:"cover_image" binding:"required"`
}

// UpdateBookDTO used for PUT /api/v1/books/:id (partial updates allowed)
type UpdateBookDTO struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	GenreID     *string `json:"genre_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
}

type BookResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Author      string         `json:"author"`
	Description string         `json:"description,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	CoverImage  string         `json:"cover_image"`
	Genre       *GenreResponse `json:"genre,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// BookListQuery holds the list endpoint's query parameters.
type BookListQuery struct {
	Page   int
	Limit  int
	Search string   // substring match on title or author
	Genres []string // genre ids, multi-select
	SortBy string   // "title" | "newest"
}

func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:       d.Title,
		Author:      d.Author,
		GenreID:     d.GenreID,
		Description: d.Description,
		Summary:     d.Summary,
		CoverImage:  d.CoverImage,
	}
}

func (d UpdateBookDTO) ApplyTo(b *models.Book) {
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.Author != nil {
		b.Author = *d.Author
	}
	if d.GenreID != nil {
		b.GenreID = *d.GenreID
	}
	if d.Description != nil {
		b.Description = *d.Description
	}
	if d.Summary != nil {
		b.Summary = *d.Summary
	}
	if d.CoverImage != nil {
		b.CoverImage = *d.CoverImage
	}
}

func FromModelToBookResponse(b models.Book) BookResponse {
	resp := BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Summary:     b.Summary,
		CoverImage:  b.CoverImage,
		CreatedAt:   b.CreatedAt,
	}
	if b.Genre != nil {
		genre := FromModelToGenreResponse(*b.Genre)
		resp.Genre = &genre
	}
	return resp
}
