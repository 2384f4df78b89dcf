package service

import (
	"context"
	"errors"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyReviewed = errors.New("you have already reviewed this book")
	ErrReviewNotFound  = errors.New("review not found")
)

type ReviewService interface {
	Create(ctx context.Context, userID string, d dto.CreateReviewDTO) (*models.Review, error)
	List(ctx context.Context, status, bookID string, page, pageSize int) ([]models.Review, int64, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Summary(ctx context.Context, bookID string) (*dto.RatingSummary, error)
}

type reviewService struct {
	repo     repository.ReviewRepository
	bookRepo *repository.BookRepo
}

func NewReviewService(repo repository.ReviewRepository, bookRepo *repository.BookRepo) ReviewService {
	return &reviewService{repo: repo, bookRepo: bookRepo}
}

func (s *reviewService) Create(ctx context.Context, userID string, d dto.CreateReviewDTO) (*models.Review, error) {
	if _, err := s.bookRepo.GetByID(ctx, d.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	// One review per user per book
	if _, err := s.repo.GetByUserAndBook(ctx, userID, d.BookID); err == nil {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		BookID:  d.BookID,
		UserID:  userID,
		Rating:  d.Rating,
		Comment: d.Comment,
		Status:  models.ReviewStatusPending,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) List(ctx context.Context, status, bookID string, page, pageSize int) ([]models.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.repo.List(ctx, status, bookID, page, pageSize)
}

func (s *reviewService) Approve(ctx context.Context, id string) error {
	if err := s.repo.UpdateStatus(ctx, id, models.ReviewStatusApproved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

// Reject removes a pending review; rejected reviews are not kept.
func (s *reviewService) Reject(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

func (s *reviewService) Summary(ctx context.Context, bookID string) (*dto.RatingSummary, error) {
	avg, count, err := s.repo.ApprovedSummary(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return &dto.RatingSummary{
		BookID:      bookID,
		AvgRating:   avg,
		ReviewCount: count,
	}, nil
}
