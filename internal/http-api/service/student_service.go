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
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("a student with this email already exists")
)

type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentDTO) (*models.Student, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context, page, pageSize int) ([]models.Student, *dto.Pagination, error)
	Deactivate(ctx context.Context, id string) error
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentDTO) (*models.Student, error) {
	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrStudentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check student email: %w", err)
	}

	student := req.ToModel()
	student.Active = true
	if err := s.repo.Create(ctx, &student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return &student, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context, page, pageSize int) ([]models.Student, *dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	students, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("list students: %w", err)
	}

	pagination := dto.NewPagination(total, page, pageSize)
	return students, &pagination, nil
}

func (s *studentService) Deactivate(ctx context.Context, id string) error {
	err := s.repo.Deactivate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStudentNotFound
	}
	return err
}
