package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/repository"
)

func newBookService(db *gorm.DB) BookService {
	return NewBookService(repository.NewBookRepo(db), repository.NewGenreRepo(db))
}

func TestBookCreateValidatesGenre(t *testing.T) {
	db := newRecommendationTestDB(t)

	svc := newBookService(db)
	_, err := svc.Create(context.Background(), dto.CreateBookDTO{
		Title:       "Orphan",
		Author:      "Nobody",
		GenreID:     "3b6cf3f2-1a58-44a7-b1f8-14e0ddfc0a15",
		Description: "d",
		Summary:     "s",
		CoverImage:  "c.jpg",
	})
	assert.ErrorIs(t, err, ErrInvalidGenreID)
}

func TestBookCreateRejectsDuplicateTitle(t *testing.T) {
	db := newRecommendationTestDB(t)
	genre := seedGenre(t, db, "Sci-Fi")

	svc := newBookService(db)
	in := dto.CreateBookDTO{
		Title:       "Hyperion",
		Author:      "Dan Simmons",
		GenreID:     genre.ID,
		Description: "d",
		Summary:     "s",
		CoverImage:  "c.jpg",
	}
	book, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, book.Genre)
	assert.Equal(t, "Sci-Fi", book.Genre.Name)

	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrTitleTaken)
}

func TestBookListFiltersByGenreAndSearch(t *testing.T) {
	db := newRecommendationTestDB(t)
	scifi := seedGenre(t, db, "Sci-Fi")
	fantasy := seedGenre(t, db, "Fantasy")
	seedBook(t, db, "Neuromancer", scifi.ID)
	seedBook(t, db, "Snow Crash", scifi.ID)
	seedBook(t, db, "The Name of the Wind", fantasy.ID)

	svc := newBookService(db)

	books, total, err := svc.List(context.Background(), dto.BookListQuery{Genres: []string{scifi.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, books, 2)

	books, total, err = svc.List(context.Background(), dto.BookListQuery{Search: "Snow"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, books, 1)
	assert.Equal(t, "Snow Crash", books[0].Title)
}

func TestBookUpdateChecksNewTitle(t *testing.T) {
	db := newRecommendationTestDB(t)
	genre := seedGenre(t, db, "Sci-Fi")
	seedBook(t, db, "Taken", genre.ID)
	book := seedBook(t, db, "Original", genre.ID)

	svc := newBookService(db)
	taken := "Taken"
	_, err := svc.Update(context.Background(), book.ID, dto.UpdateBookDTO{Title: &taken})
	assert.ErrorIs(t, err, ErrTitleTaken)

	fresh := "Renamed"
	updated, err := svc.Update(context.Background(), book.ID, dto.UpdateBookDTO{Title: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestBookDeleteUnknown(t *testing.T) {
	db := newRecommendationTestDB(t)

	svc := newBookService(db)
	err := svc.Delete(context.Background(), "47e2cf4e-07a5-4d4e-9caf-53c8cbc9ad47")
	assert.ErrorIs(t, err, ErrBookNotFound)
}
