package dto

import (
	"time"

	"bookworm/internal/http-api/models"
)

type AddToLibraryRequest struct {
	BookID string `json:"book_id" binding:"required,uuid"`
	Shelf  string `json:"shelf" binding:"omitempty,oneof=want reading read"`
}

type MoveBookRequest struct {
	BookID string `json:"book_id" binding:"required,uuid"`
	Shelf  string `json:"shelf" binding:"required,oneof=want reading read"`
}

type UpdateProgressRequest struct {
	BookID   string `json:"book_id" binding:"required,uuid"`
	Progress int    `json:"progress" binding:"min=0,max=100"`
}

type LibraryEntryResponse struct {
	ID         string        `json:"id"`
	Shelf      string        `json:"shelf"`
	Progress   int           `json:"progress"`
	StartedAt  *time.Time    `json:"started_at,omitempty"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
	AddedAt    time.Time     `json:"added_at"`
	Book       *BookResponse `json:"book,omitempty"`
}

type LibraryListResponse struct {
	Items []LibraryEntryResponse `json:"items"`
	Total int                    `json:"total"`
}

func FromModelToLibraryEntryResponse(e models.LibraryEntry) LibraryEntryResponse {
	resp := LibraryEntryResponse{
		ID:         e.ID,
		Shelf:      e.Shelf,
		Progress:   e.Progress,
		StartedAt:  e.StartedAt,
		FinishedAt: e.FinishedAt,
		AddedAt:    e.CreatedAt,
	}
	if e.Book != nil {
		book := FromModelToBookResponse(*e.Book)
		resp.Book = &book
	}
	return resp
}
