package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"
)

func newLibraryService(db *gorm.DB) LibraryService {
	return NewLibraryService(repository.NewLibraryRepository(db), repository.NewBookRepo(db))
}

func TestLibraryAddDefaultsToWantShelf(t *testing.T) {
	db := newRecommendationTestDB(t)
	genre := seedGenre(t, db, "Fantasy")
	book := seedBook(t, db, "The Hobbit", genre.ID)
	user := seedUser(t, db, "lib@test.local")

	svc := newLibraryService(db)
	entry, err := svc.Add(context.Background(), user.ID, book.ID, "")
	require.NoError(t, err)

	assert.Equal(t, models.ShelfWant, entry.Shelf)
	assert.Zero(t, entry.Progress)
	assert.Nil(t, entry.StartedAt)
}

func TestLibraryAddRejectsDuplicates(t *testing.T) {
	db := newRecommendationTestDB(t)
	genre := seedGenre(t, db, "Fantasy")
	book := seedBook(t, db, "Dune", genre.ID)
	user := seedUser(t, db, "dup@test.local")

	svc := newLibraryService(db)
	_, err := svc.Add(context.Background(), user.ID, book.ID, models.ShelfReading)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), user.ID, book.ID, models.ShelfWant)
	assert.ErrorIs(t, err, ErrAlreadyInLibrary)
}

func TestLibraryAddUnknownBook(t *testing.T) {
	db := newRecommendationTestDB(t)
	user := seedUser(t, db, "nobook@test.local")

	svc := newLibraryService(db)
	_, err := svc.Add(context.Background(), user.ID, "5f0c9597-44ad-4c01-9c9a-26af0a0c8c64", "")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestLibraryProgressMovesShelves(t *testing.T) {
	db := newRecommendationTestDB(t)
	genre := seedGenre(t, db, "Fantasy")
	book := seedBook(t, db, "Mistborn", genre.ID)
	user := seedUser(t, db, "progress@test.local")

	svc := newLibraryService(db)
	_, err := svc.Add(context.Background(), user.ID, book.ID, "")
	require.NoError(t, err)

	entry, err := svc.UpdateProgress(context.Background(), user.ID, book.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, models.ShelfReading, entry.Shelf)
	assert.Equal(t, 40, entry.Progress)
	require.NotNil(t, entry.StartedAt)
	started := *entry.StartedAt
	assert.Nil(t, entry.FinishedAt)

	entry, err = svc.UpdateProgress(context.Background(), user.ID, book.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, models.ShelfRead, entry.Shelf)
	require.NotNil(t, entry.FinishedAt)
	// First start timestamp survives later updates. Compare instants,
	// not representations: the round trip through the store drops the
	// monotonic reading and normalizes the location.
	assert.True(t, started.Equal(*entry.StartedAt))
}

func TestLibraryMoveAndRemove(t *testing.T) {
	db := newRecommendationTestDB(t)
	genre := seedGenre(t, db, "Fantasy")
	book := seedBook(t, db, "Elantris", genre.ID)
	user := seedUser(t, db, "move@test.local")

	svc := newLibraryService(db)
	_, err := svc.Add(context.Background(), user.ID, book.ID, "")
	require.NoError(t, err)

	entry, err := svc.Move(context.Background(), user.ID, book.ID, models.ShelfRead)
	require.NoError(t, err)
	assert.Equal(t, models.ShelfRead, entry.Shelf)

	require.NoError(t, svc.Remove(context.Background(), user.ID, book.ID))
	err = svc.Remove(context.Background(), user.ID, book.ID)
	assert.ErrorIs(t, err, ErrNotInLibrary)
}

func TestLibraryListReturnsBooks(t *testing.T) {
	db := newRecommendationTestDB(t)
	genre := seedGenre(t, db, "Fantasy")
	user := seedUser(t, db, "list@test.local")

	svc := newLibraryService(db)
	for _, title := range []string{"Book A", "Book B"} {
		book := seedBook(t, db, title, genre.ID)
		_, err := svc.Add(context.Background(), user.ID, book.ID, models.ShelfWant)
		require.NoError(t, err)
	}

	entries, err := svc.List(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.NotNil(t, e.Book)
		assert.NotEmpty(t, e.Book.Title)
	}
}
