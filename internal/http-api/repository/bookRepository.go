package repository

import (
	"context"
	"fmt"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type BookRepo struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *BookRepo) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepo) GetByTitle(ctx context.Context, title string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List applies the catalog search: title/author substring match,
// multi-genre filter, sort, pagination. Genre is preloaded on each row.
func (r *BookRepo) List(ctx context.Context, q dto.BookListQuery) ([]models.Book, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Book{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", pattern, pattern)
	}
	if len(q.Genres) > 0 {
		query = query.Where("genre_id IN ?", q.Genres)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	switch q.SortBy {
	case "title":
		query = query.Order("title asc")
	default:
		query = query.Order("created_at desc")
	}

	var books []models.Book
	offset := (q.Page - 1) * q.Limit
	if err := query.
		Preload("Genre").
		Limit(q.Limit).
		Offset(offset).
		Find(&books).Error; err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}

	return books, total, nil
}

func (r *BookRepo) Update(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
