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
	ErrGenreExists   = errors.New("genre already exists")
	ErrGenreNotFound = errors.New("genre not found")
)

type GenreService interface {
	Create(ctx context.Context, d dto.CreateGenreDTO) (*models.Genre, error)
	Get(ctx context.Context, id string) (*models.Genre, error)
	List(ctx context.Context, page, pageSize int) ([]models.Genre, int64, error)
	Names(ctx context.Context) ([]models.Genre, error)
	Update(ctx context.Context, id string, d dto.UpdateGenreDTO) (*models.Genre, error)
	Delete(ctx context.Context, id string) error
}

type genreService struct {
	repo *repository.GenreRepo
}

func NewGenreService(repo *repository.GenreRepo) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, d dto.CreateGenreDTO) (*models.Genre, error) {
	if _, err := s.repo.GetByName(ctx, d.Name); err == nil {
		return nil, ErrGenreExists
	}

	genre := d.ToModel()
	if err := s.repo.Create(ctx, &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (s *genreService) Get(ctx context.Context, id string) (*models.Genre, error) {
	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return genre, nil
}

func (s *genreService) List(ctx context.Context, page, pageSize int) ([]models.Genre, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

func (s *genreService) Names(ctx context.Context) ([]models.Genre, error) {
	return s.repo.Names(ctx)
}

func (s *genreService) Update(ctx context.Context, id string, d dto.UpdateGenreDTO) (*models.Genre, error) {
	genre, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Name != nil && *d.Name != genre.Name {
		if _, err := s.repo.GetByName(ctx, *d.Name); err == nil {
			return nil, ErrGenreExists
		}
	}

	d.ApplyTo(genre)
	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGenreNotFound
		}
		return err
	}
	return nil
}
