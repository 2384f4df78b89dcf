package dto

import (
	"time"

	"bookworm/internal/http-api/models"
)

type CreateReviewDTO struct {
	BookID  string `json:"book_id" binding:"required,uuid"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	BookTitle string `json:"book_title,omitempty"`
	UserName  string `json:"user_name,omitempty"`
}

// RatingSummary is the approved-only aggregate for a book.
type RatingSummary struct {
	BookID      string  `json:"book_id"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

func FromModelToReviewResponse(r models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.Book != nil {
		resp.BookTitle = r.Book.Title
	}
	if r.User != nil {
		resp.UserName = r.User.Name
	}
	return resp
}
