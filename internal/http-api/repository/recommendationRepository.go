package repository

import (
	"context"
	"fmt"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

// ReadShelfEntry is one "read"-shelf book with its genre, in shelving
// order. The order matters: genre tallies downstream break count ties
// by first encounter.
type ReadShelfEntry struct {
	BookID  string
	GenreID string
}

// BookStats is a candidate book with the aggregates the scorer needs:
// approved-review average and count, and shelving popularity across
// all shelves.
type BookStats struct {
	ID           string
	Title        string
	Author       string
	CoverImage   string
	GenreID      string
	GenreName    string
	AvgRating    float64
	ReviewCount  int64
	ShelvedCount int64
}

type RecommendationRepository interface {
	ReadShelf(ctx context.Context, userID string) ([]ReadShelfEntry, error)
	CandidateStats(ctx context.Context, genreIDs, excludeBookIDs []string) ([]BookStats, error)
	FallbackStats(ctx context.Context, excludeBookIDs []string) ([]BookStats, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// ReadShelf returns the user's "read" shelf joined to each book's genre.
func (r *recommendationRepository) ReadShelf(ctx context.Context, userID string) ([]ReadShelfEntry, error) {
	var entries []ReadShelfEntry
	err := r.db.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Select("library_entries.book_id, books.genre_id").
		Joins("JOIN books ON books.id = library_entries.book_id").
		Where("library_entries.user_id = ? AND library_entries.shelf = ?", userID, models.ShelfRead).
		Order("library_entries.created_at asc").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("read shelf: %w", err)
	}
	return entries, nil
}

// Correlated subqueries compute the per-book aggregates in a single
// round trip; gating and scoring happen in the service.
const bookStatsSelect = `books.id, books.title, books.author, books.cover_image, books.genre_id,
genres.name AS genre_name,
COALESCE((SELECT AVG(rating) FROM reviews WHERE reviews.book_id = books.id AND reviews.status = ?), 0) AS avg_rating,
(SELECT COUNT(*) FROM reviews WHERE reviews.book_id = books.id AND reviews.status = ?) AS review_count,
(SELECT COUNT(*) FROM library_entries WHERE library_entries.book_id = books.id) AS shelved_count`

// CandidateStats returns stats for every book in the given genres,
// excluding the given book ids.
func (r *recommendationRepository) CandidateStats(ctx context.Context, genreIDs, excludeBookIDs []string) ([]BookStats, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}

	query := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Select(bookStatsSelect, models.ReviewStatusApproved, models.ReviewStatusApproved).
		Joins("JOIN genres ON genres.id = books.genre_id").
		Where("books.genre_id IN ?", genreIDs)
	if len(excludeBookIDs) > 0 {
		query = query.Where("books.id NOT IN ?", excludeBookIDs)
	}

	var stats []BookStats
	if err := query.Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("candidate stats: %w", err)
	}
	return stats, nil
}

// FallbackStats returns stats for every book not in the exclusion set.
func (r *recommendationRepository) FallbackStats(ctx context.Context, excludeBookIDs []string) ([]BookStats, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Select(bookStatsSelect, models.ReviewStatusApproved, models.ReviewStatusApproved).
		Joins("JOIN genres ON genres.id = books.genre_id")
	if len(excludeBookIDs) > 0 {
		query = query.Where("books.id NOT IN ?", excludeBookIDs)
	}

	var stats []BookStats
	if err := query.Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("fallback stats: %w", err)
	}
	return stats, nil
}
