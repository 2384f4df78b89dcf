package service

import (
	"context"
	"errors"
	"time"

	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyInLibrary = errors.New("book already added to library")
	ErrNotInLibrary     = errors.New("book not found in library")
)

type LibraryService interface {
	Add(ctx context.Context, userID, bookID, shelf string) (*models.LibraryEntry, error)
	List(ctx context.Context, userID string) ([]models.LibraryEntry, error)
	Move(ctx context.Context, userID, bookID, shelf string) (*models.LibraryEntry, error)
	UpdateProgress(ctx context.Context, userID, bookID string, progress int) (*models.LibraryEntry, error)
	Remove(ctx context.Context, userID, bookID string) error
}

type libraryService struct {
	repo     repository.LibraryRepository
	bookRepo *repository.BookRepo
}

func NewLibraryService(repo repository.LibraryRepository, bookRepo *repository.BookRepo) LibraryService {
	return &libraryService{repo: repo, bookRepo: bookRepo}
}

func (s *libraryService) Add(ctx context.Context, userID, bookID, shelf string) (*models.LibraryEntry, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInLibrary
	}

	if shelf == "" {
		shelf = models.ShelfWant
	}

	entry := &models.LibraryEntry{
		UserID: userID,
		BookID: bookID,
		Shelf:  shelf,
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *libraryService) List(ctx context.Context, userID string) ([]models.LibraryEntry, error) {
	return s.repo.List(ctx, userID)
}

func (s *libraryService) Move(ctx context.Context, userID, bookID, shelf string) (*models.LibraryEntry, error) {
	entry, err := s.repo.Get(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInLibrary
		}
		return nil, err
	}

	entry.Shelf = shelf
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateProgress records reading progress and moves the entry between
// shelves: any progress puts the book on "reading", 100% moves it to
// "read" and stamps finishedAt.
func (s *libraryService) UpdateProgress(ctx context.Context, userID, bookID string, progress int) (*models.LibraryEntry, error) {
	entry, err := s.repo.Get(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInLibrary
		}
		return nil, err
	}

	now := time.Now()
	entry.Progress = progress

	if progress > 0 && entry.StartedAt == nil {
		entry.StartedAt = &now
	}

	if progress == 100 {
		entry.Shelf = models.ShelfRead
		entry.FinishedAt = &now
	} else {
		entry.Shelf = models.ShelfReading
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *libraryService) Remove(ctx context.Context, userID, bookID string) error {
	if err := s.repo.Remove(ctx, userID, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInLibrary
		}
		return err
	}
	return nil
}
