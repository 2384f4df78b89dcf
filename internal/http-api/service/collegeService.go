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
	ErrCollegeNotFound = errors.New("college not found")
	ErrCollegeExists   = errors.New("college already exists")
)

type CollegeService interface {
	Create(ctx context.Context, req dto.CreateCollegeDTO) (*models.College, error)
	Get(ctx context.Context, id string) (*models.College, error)
	List(ctx context.Context, search string, page, pageSize int) ([]models.College, *dto.Pagination, error)
	Update(ctx context.Context, id string, req dto.UpdateCollegeDTO) (*models.College, error)
	Delete(ctx context.Context, id string) error

	Graduates(ctx context.Context) ([]dto.CollegeGraduates, error)
	RecommendedPapers(ctx context.Context) ([]dto.RecommendedPaper, error)
	ForAdmission(ctx context.Context, page, pageSize int) ([]dto.CollegeForAdmission, *dto.Pagination, error)
}

// recommendedPaperLimit caps the papers spotlight on the home page.
const recommendedPaperLimit = 3

type collegeService struct {
	repo *repository.CollegeRepo
}

func NewCollegeService(repo *repository.CollegeRepo) CollegeService {
	return &collegeService{repo: repo}
}

func (s *collegeService) Create(ctx context.Context, req dto.CreateCollegeDTO) (*models.College, error) {
	_, err := s.repo.GetByName(ctx, req.Name)
	if err == nil {
		return nil, ErrCollegeExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check college name: %w", err)
	}

	college := req.ToModel()
	if err := s.repo.Create(ctx, &college); err != nil {
		return nil, err
	}
	return &college, nil
}

func (s *collegeService) Get(ctx context.Context, id string) (*models.College, error) {
	college, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCollegeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get college: %w", err)
	}
	return college, nil
}

func (s *collegeService) List(ctx context.Context, search string, page, pageSize int) ([]models.College, *dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}

	colleges, total, err := s.repo.List(ctx, search, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	pagination := dto.NewPagination(total, page, pageSize)
	return colleges, &pagination, nil
}

func (s *collegeService) Update(ctx context.Context, id string, req dto.UpdateCollegeDTO) (*models.College, error) {
	college, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCollegeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get college: %w", err)
	}

	if req.Name != nil && *req.Name != college.Name {
		if _, err := s.repo.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrCollegeExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check college name: %w", err)
		}
	}

	req.ApplyTo(college)
	if err := s.repo.Update(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

func (s *collegeService) Graduates(ctx context.Context) ([]dto.CollegeGraduates, error) {
	colleges, err := s.repo.Graduates(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CollegeGraduates, 0, len(colleges))
	for _, c := range colleges {
		out = append(out, dto.CollegeGraduates{Name: c.Name, Graduates: c.Graduates})
	}
	return out, nil
}

// RecommendedPapers flattens the newest colleges' paper lists into a
// short spotlight.
func (s *collegeService) RecommendedPapers(ctx context.Context) ([]dto.RecommendedPaper, error) {
	colleges, err := s.repo.ListNewestWithPapers(ctx)
	if err != nil {
		return nil, err
	}

	papers := make([]dto.RecommendedPaper, 0, recommendedPaperLimit)
	for _, c := range colleges {
		for _, p := range c.ResearchPapers {
			papers = append(papers, dto.RecommendedPaper{
				CollegeName: c.Name,
				PaperTitle:  p.Title,
				PaperLink:   p.Link,
			})
			if len(papers) == recommendedPaperLimit {
				return papers, nil
			}
		}
	}
	return papers, nil
}

func (s *collegeService) ForAdmission(ctx context.Context, page, pageSize int) ([]dto.CollegeForAdmission, *dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	colleges, total, err := s.repo.ListForAdmission(ctx, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	out := make([]dto.CollegeForAdmission, 0, len(colleges))
	for _, c := range colleges {
		out = append(out, dto.CollegeForAdmission{
			ID:            c.ID,
			Name:          c.Name,
			Image:         c.Image,
			AdmissionDate: c.AdmissionDate,
			Rating:        c.Rating,
		})
	}

	pagination := dto.NewPagination(total, page, pageSize)
	return out, &pagination, nil
}

func (s *collegeService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCollegeNotFound
	}
	return err
}
