package repository

import (
	"context"
	"fmt"
	"time"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

// StatsRepository runs the dashboard aggregations.
type StatsRepository interface {
	Overview(ctx context.Context) (dto.DashboardOverview, error)
	BooksPerGenre(ctx context.Context) ([]dto.GenreCount, error)
	ShelfDistribution(ctx context.Context) ([]dto.ShelfCount, error)
	TopRatedBooks(ctx context.Context, limit int) ([]dto.TopRatedBook, error)
	UserRoles(ctx context.Context) ([]dto.RoleCount, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Overview(ctx context.Context) (dto.DashboardOverview, error) {
	var overview dto.DashboardOverview
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Book{}).Count(&overview.TotalBooks).Error; err != nil {
		return overview, fmt.Errorf("count books: %w", err)
	}
	if err := db.Model(&models.User{}).Count(&overview.TotalUsers).Error; err != nil {
		return overview, fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&models.Review{}).Count(&overview.TotalReviews).Error; err != nil {
		return overview, fmt.Errorf("count reviews: %w", err)
	}
	if err := db.Model(&models.Review{}).
		Where("status = ?", models.ReviewStatusPending).
		Count(&overview.PendingReviews).Error; err != nil {
		return overview, fmt.Errorf("count pending reviews: %w", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := db.Model(&models.User{}).
		Where("created_at >= ?", weekAgo).
		Count(&overview.RecentUsers).Error; err != nil {
		return overview, fmt.Errorf("count recent users: %w", err)
	}

	return overview, nil
}

func (r *statsRepository) BooksPerGenre(ctx context.Context) ([]dto.GenreCount, error) {
	var counts []dto.GenreCount
	err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Select("genres.name AS genre, COUNT(*) AS count").
		Joins("JOIN genres ON genres.id = books.genre_id").
		Group("genres.name").
		Order("count desc").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("books per genre: %w", err)
	}
	return counts, nil
}

func (r *statsRepository) ShelfDistribution(ctx context.Context) ([]dto.ShelfCount, error) {
	var counts []dto.ShelfCount
	err := r.db.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Select("shelf, COUNT(*) AS count").
		Group("shelf").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("shelf distribution: %w", err)
	}

	// Present shelf keys as display labels
	labels := map[string]string{
		models.ShelfWant:    "Want to Read",
		models.ShelfReading: "Currently Reading",
		models.ShelfRead:    "Read",
	}
	for i := range counts {
		if label, ok := labels[counts[i].Shelf]; ok {
			counts[i].Shelf = label
		}
	}
	return counts, nil
}

func (r *statsRepository) TopRatedBooks(ctx context.Context, limit int) ([]dto.TopRatedBook, error) {
	var books []dto.TopRatedBook
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("books.title, AVG(reviews.rating) AS avg_rating, COUNT(*) AS total_reviews").
		Joins("JOIN books ON books.id = reviews.book_id").
		Where("reviews.status = ?", models.ReviewStatusApproved).
		Group("books.id, books.title").
		Order("avg_rating desc, total_reviews desc").
		Limit(limit).
		Scan(&books).Error
	if err != nil {
		return nil, fmt.Errorf("top rated books: %w", err)
	}
	return books, nil
}

func (r *statsRepository) UserRoles(ctx context.Context) ([]dto.RoleCount, error) {
	var roles []dto.RoleCount
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("user roles: %w", err)
	}
	return roles, nil
}
