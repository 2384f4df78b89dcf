package repository

import (
	"context"
	"fmt"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type CollegeRepo struct {
	db *gorm.DB
}

func NewCollegeRepo(db *gorm.DB) *CollegeRepo {
	return &CollegeRepo{db: db}
}

func (r *CollegeRepo) Create(ctx context.Context, c *models.College) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create college: %w", err)
	}
	return nil
}

func (r *CollegeRepo) GetByID(ctx context.Context, id string) (*models.College, error) {
	var college models.College
	if err := r.db.WithContext(ctx).First(&college, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *CollegeRepo) GetByName(ctx context.Context, name string) (*models.College, error) {
	var college models.College
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&college).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *CollegeRepo) List(ctx context.Context, search string, page, pageSize int) ([]models.College, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.College{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count colleges: %w", err)
	}

	var colleges []models.College
	offset := (page - 1) * pageSize
	if err := query.
		Order("rating desc").
		Limit(pageSize).
		Offset(offset).
		Find(&colleges).Error; err != nil {
		return nil, 0, fmt.Errorf("list colleges: %w", err)
	}

	return colleges, total, nil
}

// Graduates loads every college's name and alumni list, nothing else.
func (r *CollegeRepo) Graduates(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	if err := r.db.WithContext(ctx).
		Select("name", "graduates").
		Find(&colleges).Error; err != nil {
		return nil, fmt.Errorf("list graduates: %w", err)
	}
	return colleges, nil
}

// ListNewestWithPapers returns colleges that have published papers,
// newest first. The papers column is a JSON blob, so the flattening
// happens in the service.
func (r *CollegeRepo) ListNewestWithPapers(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	if err := r.db.WithContext(ctx).
		Select("name", "research_papers", "created_at").
		Where("research_papers IS NOT NULL AND research_papers NOT IN ('', 'null', '[]')").
		Order("created_at desc").
		Find(&colleges).Error; err != nil {
		return nil, fmt.Errorf("list colleges with papers: %w", err)
	}
	return colleges, nil
}

// ListForAdmission pages through colleges with only the admission-page
// fields selected, newest first.
func (r *CollegeRepo) ListForAdmission(ctx context.Context, page, pageSize int) ([]models.College, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.College{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count colleges: %w", err)
	}

	var colleges []models.College
	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Select("id", "name", "image", "admission_date", "rating").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&colleges).Error; err != nil {
		return nil, 0, fmt.Errorf("list colleges for admission: %w", err)
	}
	return colleges, total, nil
}

func (r *CollegeRepo) Update(ctx context.Context, c *models.College) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update college: %w", err)
	}
	return nil
}

func (r *CollegeRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.College{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete college: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
