package repository

import (
	"context"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type AdmissionRepository interface {
	Create(ctx context.Context, admission *models.Admission) error
	Exists(ctx context.Context, collegeID, email string) (bool, error)
	ListByCollege(ctx context.Context, collegeID string) ([]models.Admission, error)
	ListByEmail(ctx context.Context, email string) ([]models.Admission, error)
}

type admissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepository(db *gorm.DB) AdmissionRepository {
	return &admissionRepository{db: db}
}

func (r *admissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	return r.db.WithContext(ctx).Create(admission).Error
}

func (r *admissionRepository) Exists(ctx context.Context, collegeID, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Admission{}).
		Where("college_id = ? AND email = ?", collegeID, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *admissionRepository) ListByCollege(ctx context.Context, collegeID string) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.WithContext(ctx).
		Where("college_id = ?", collegeID).
		Order("created_at DESC").
		Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) ListByEmail(ctx context.Context, email string) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.WithContext(ctx).
		Preload("College").
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}
