package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"
)

var ErrTutorialNotFound = errors.New("tutorial not found")

type TutorialService interface {
	Create(ctx context.Context, req dto.CreateTutorialDTO, createdBy string) (*models.Tutorial, error)
	Get(ctx context.Context, id string) (*models.Tutorial, error)
	List(ctx context.Context, page, pageSize int) ([]models.Tutorial, *dto.Pagination, error)
	Update(ctx context.Context, id string, req dto.UpdateTutorialDTO) (*models.Tutorial, error)
	Delete(ctx context.Context, id string) error
}

type tutorialService struct {
	repo repository.TutorialRepository
}

func NewTutorialService(repo repository.TutorialRepository) TutorialService {
	return &tutorialService{repo: repo}
}

func (s *tutorialService) Create(ctx context.Context, req dto.CreateTutorialDTO, createdBy string) (*models.Tutorial, error) {
	tutorial := req.ToModel(createdBy)
	if err := s.repo.Create(ctx, &tutorial); err != nil {
		return nil, fmt.Errorf("create tutorial: %w", err)
	}
	return &tutorial, nil
}

func (s *tutorialService) Get(ctx context.Context, id string) (*models.Tutorial, error) {
	tutorial, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTutorialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tutorial: %w", err)
	}
	return tutorial, nil
}

func (s *tutorialService) List(ctx context.Context, page, pageSize int) ([]models.Tutorial, *dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	tutorials, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("list tutorials: %w", err)
	}

	pagination := dto.NewPagination(total, page, pageSize)
	return tutorials, &pagination, nil
}

func (s *tutorialService) Update(ctx context.Context, id string, req dto.UpdateTutorialDTO) (*models.Tutorial, error) {
	tutorial, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTutorialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tutorial: %w", err)
	}

	req.ApplyTo(tutorial)
	if err := s.repo.Update(ctx, tutorial); err != nil {
		return nil, fmt.Errorf("update tutorial: %w", err)
	}
	return tutorial, nil
}

func (s *tutorialService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTutorialNotFound
	}
	return err
}
