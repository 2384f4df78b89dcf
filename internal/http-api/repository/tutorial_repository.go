package repository

import (
	"context"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type TutorialRepository interface {
	Create(ctx context.Context, tutorial *models.Tutorial) error
	GetByID(ctx context.Context, id string) (*models.Tutorial, error)
	List(ctx context.Context, page, pageSize int) ([]models.Tutorial, int64, error)
	Update(ctx context.Context, tutorial *models.Tutorial) error
	Delete(ctx context.Context, id string) error
}

type tutorialRepository struct {
	db *gorm.DB
}

func NewTutorialRepository(db *gorm.DB) TutorialRepository {
	return &tutorialRepository{db: db}
}

func (r *tutorialRepository) Create(ctx context.Context, tutorial *models.Tutorial) error {
	return r.db.WithContext(ctx).Create(tutorial).Error
}

func (r *tutorialRepository) GetByID(ctx context.Context, id string) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	if err := r.db.WithContext(ctx).First(&tutorial, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

func (r *tutorialRepository) List(ctx context.Context, page, pageSize int) ([]models.Tutorial, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Tutorial{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tutorials []models.Tutorial
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&tutorials).Error
	if err != nil {
		return nil, 0, err
	}

	return tutorials, total, nil
}

func (r *tutorialRepository) Update(ctx context.Context, tutorial *models.Tutorial) error {
	return r.db.WithContext(ctx).Save(tutorial).Error
}

func (r *tutorialRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Tutorial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
