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
	ErrBookNotFound   = errors.New("book not found")
	ErrTitleTaken     = errors.New("book with this title already exists")
	ErrInvalidGenreID = errors.New("invalid genre ID")
)

type BookService interface {
	Create(ctx context.Context, d dto.CreateBookDTO) (*models.Book, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	List(ctx context.Context, q dto.BookListQuery) ([]models.Book, int64, error)
	Update(ctx context.Context, id string, d dto.UpdateBookDTO) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}

type bookService struct {
	repo      *repository.BookRepo
	genreRepo *repository.GenreRepo
}

func NewBookService(repo *repository.BookRepo, genreRepo *repository.GenreRepo) BookService {
	return &bookService{repo: repo, genreRepo: genreRepo}
}

func (s *bookService) Create(ctx context.Context, d dto.CreateBookDTO) (*models.Book, error) {
	// Genre reference must resolve
	if _, err := s.genreRepo.GetByID(ctx, d.GenreID); err != nil {
		return nil, ErrInvalidGenreID
	}

	// Titles are unique across the catalog
	if _, err := s.repo.GetByTitle(ctx, d.Title); err == nil {
		return nil, ErrTitleTaken
	}

	book := d.ToModel()
	if err := s.repo.Create(ctx, &book); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, book.ID)
}

func (s *bookService) Get(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) List(ctx context.Context, q dto.BookListQuery) ([]models.Book, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 12
	}
	return s.repo.List(ctx, q)
}

func (s *bookService) Update(ctx context.Context, id string, d dto.UpdateBookDTO) (*models.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.GenreID != nil && *d.GenreID != book.GenreID {
		if _, err := s.genreRepo.GetByID(ctx, *d.GenreID); err != nil {
			return nil, ErrInvalidGenreID
		}
	}

	if d.Title != nil && *d.Title != book.Title {
		if _, err := s.repo.GetByTitle(ctx, *d.Title); err == nil {
			return nil, ErrTitleTaken
		}
	}

	d.ApplyTo(book)
	book.Genre = nil // avoid writing the stale association back
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, book.ID)
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}
