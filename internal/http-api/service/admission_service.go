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

var (
	ErrAlreadyApplied = errors.New("an application for this college already exists")
	ErrInvalidDOB     = errors.New("date of birth must be YYYY-MM-DD")
)

type AdmissionService interface {
	Apply(ctx context.Context, req dto.CreateAdmissionDTO) (*models.Admission, error)
	ListByCollege(ctx context.Context, collegeID string) ([]models.Admission, error)
	ListByEmail(ctx context.Context, email string) ([]models.Admission, error)
}

type admissionService struct {
	repo        repository.AdmissionRepository
	collegeRepo *repository.CollegeRepo
}

func NewAdmissionService(repo repository.AdmissionRepository, collegeRepo *repository.CollegeRepo) AdmissionService {
	return &admissionService{repo: repo, collegeRepo: collegeRepo}
}

func (s *admissionService) Apply(ctx context.Context, req dto.CreateAdmissionDTO) (*models.Admission, error) {
	if _, err := s.collegeRepo.GetByID(ctx, req.CollegeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("check college: %w", err)
	}

	// One application per candidate per college
	exists, err := s.repo.Exists(ctx, req.CollegeID, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	admission, err := req.ToModel()
	if err != nil {
		return nil, ErrInvalidDOB
	}

	if err := s.repo.Create(ctx, &admission); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return &admission, nil
}

func (s *admissionService) ListByCollege(ctx context.Context, collegeID string) ([]models.Admission, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("check college: %w", err)
	}
	return s.repo.ListByCollege(ctx, collegeID)
}

func (s *admissionService) ListByEmail(ctx context.Context, email string) ([]models.Admission, error) {
	return s.repo.ListByEmail(ctx, email)
}
