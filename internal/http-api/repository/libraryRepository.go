package repository

import (
	"context"
	"fmt"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type LibraryRepository interface {
	Add(ctx context.Context, entry *models.LibraryEntry) error
	Get(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error)
	List(ctx context.Context, userID string) ([]models.LibraryEntry, error)
	Exists(ctx context.Context, userID, bookID string) (bool, error)
	Update(ctx context.Context, entry *models.LibraryEntry) error
	Remove(ctx context.Context, userID, bookID string) error
	CountByShelf(ctx context.Context, userID, shelf string) (int64, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) Add(ctx context.Context, entry *models.LibraryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add to library: %w", err)
	}
	return nil
}

func (r *libraryRepository) Get(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error) {
	var entry models.LibraryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *libraryRepository) List(ctx context.Context, userID string) ([]models.LibraryEntry, error) {
	var library []models.LibraryEntry
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Genre").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&library).Error; err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}
	return library, nil
}

func (r *libraryRepository) Exists(ctx context.Context, userID, bookID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *libraryRepository) Update(ctx context.Context, entry *models.LibraryEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("update library entry: %w", err)
	}
	return nil
}

func (r *libraryRepository) Remove(ctx context.Context, userID, bookID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.LibraryEntry{})
	if result.Error != nil {
		return fmt.Errorf("remove from library: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *libraryRepository) CountByShelf(ctx context.Context, userID, shelf string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Where("user_id = ? AND shelf = ?", userID, shelf).
		Count(&count).Error
	return count, err
}
