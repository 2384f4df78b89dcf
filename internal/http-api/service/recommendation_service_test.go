package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookworm/database"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"
)

func newRecommendationTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedGenre(t *testing.T, db *gorm.DB, name string) models.Genre {
	t.Helper()
	genre := models.Genre{Name: name}
	require.NoError(t, db.Create(&genre).Error)
	return genre
}

func seedBook(t *testing.T, db *gorm.DB, title, genreID string) models.Book {
	t.Helper()
	book := models.Book{
		Title:       title,
		Author:      "Test Author",
		Description: "d",
		Summary:     "s",
		CoverImage:  "cover.jpg",
		GenreID:     genreID,
	}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Reader", Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func shelve(t *testing.T, db *gorm.DB, userID, bookID, shelf string) {
	t.Helper()
	entry := models.LibraryEntry{UserID: userID, BookID: bookID, Shelf: shelf}
	require.NoError(t, db.Create(&entry).Error)
}

func reviewBook(t *testing.T, db *gorm.DB, userID, bookID string, rating int, status string) {
	t.Helper()
	review := models.Review{
		BookID:  bookID,
		UserID:  userID,
		Rating:  rating,
		Comment: "c",
		Status:  status,
	}
	require.NoError(t, db.Create(&review).Error)
}

func newDBService(db *gorm.DB) RecommendationService {
	return NewRecommendationService(
		repository.NewRecommendationRepository(db),
		repository.NewReviewRepository(db),
		DefaultRecommendationWeights(),
	)
}

func TestRecommendRejectsMalformedUserID(t *testing.T) {
	svc := NewRecommendationService(nil, nil, DefaultRecommendationWeights())

	_, err := svc.Recommend(context.Background(), "not-a-uuid", 10)
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestRecommendUnknownUserGetsFallback(t *testing.T) {
	db := newRecommendationTestDB(t)
	fantasy := seedGenre(t, db, "Fantasy")
	for i := 0; i < 4; i++ {
		seedBook(t, db, fmt.Sprintf("Book %d", i), fantasy.ID)
	}

	svc := newDBService(db)
	resp, err := svc.Recommend(context.Background(), uuid.New().String(), 10)
	require.NoError(t, err)

	assert.False(t, resp.IsPersonalized)
	assert.Equal(t, 0, resp.BooksRead)
	assert.Len(t, resp.Recommendations, 4)
	for _, item := range resp.Recommendations {
		assert.Zero(t, item.Score)
	}
}

func TestRecommendThinHistoryIsNotPersonalized(t *testing.T) {
	db := newRecommendationTestDB(t)
	fantasy := seedGenre(t, db, "Fantasy")
	user := seedUser(t, db, "thin@test.local")

	read1 := seedBook(t, db, "Read One", fantasy.ID)
	read2 := seedBook(t, db, "Read Two", fantasy.ID)
	shelve(t, db, user.ID, read1.ID, models.ShelfRead)
	shelve(t, db, user.ID, read2.ID, models.ShelfRead)

	unread := seedBook(t, db, "Unread", fantasy.ID)

	svc := newDBService(db)
	resp, err := svc.Recommend(context.Background(), user.ID, 10)
	require.NoError(t, err)

	assert.False(t, resp.IsPersonalized)
	assert.Equal(t, 2, resp.BooksRead)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, unread.ID, resp.Recommendations[0].ID)
}

func TestRecommendPersonalizedGenreAffinity(t *testing.T) {
	db := newRecommendationTestDB(t)
	fantasy := seedGenre(t, db, "Fantasy")
	scifi := seedGenre(t, db, "Sci-Fi")
	user := seedUser(t, db, "affinity@test.local")
	reviewer := seedUser(t, db, "other@test.local")

	for i := 0; i < 3; i++ {
		b := seedBook(t, db, fmt.Sprintf("Fantasy Read %d", i), fantasy.ID)
		shelve(t, db, user.ID, b.ID, models.ShelfRead)
	}
	scifiRead := seedBook(t, db, "Sci-Fi Read", scifi.ID)
	shelve(t, db, user.ID, scifiRead.ID, models.ShelfRead)

	candidate := seedBook(t, db, "Fantasy Candidate", fantasy.ID)
	reviewBook(t, db, reviewer.ID, candidate.ID, 4, models.ReviewStatusApproved)
	shelve(t, db, reviewer.ID, candidate.ID, models.ShelfRead)

	svc := newDBService(db)
	resp, err := svc.Recommend(context.Background(), user.ID, 10)
	require.NoError(t, err)

	assert.True(t, resp.IsPersonalized)
	assert.Equal(t, 4, resp.BooksRead)

	var found bool
	for _, item := range resp.Recommendations {
		assert.NotEqual(t, scifiRead.ID, item.ID)
		if item.ID == candidate.ID {
			found = true
			assert.Positive(t, item.Score)
			assert.Equal(t, "Matches your love for Fantasy (3 books read)", item.Reason)
		}
	}
	assert.True(t, found, "candidate should be recommended")
}

func TestRecommendGateFiltersPoorlyRatedCandidates(t *testing.T) {
	db := newRecommendationTestDB(t)
	fantasy := seedGenre(t, db, "Fantasy")
	user := seedUser(t, db, "gate@test.local")
	reviewer := seedUser(t, db, "rev@test.local")

	for i := 0; i < 3; i++ {
		b := seedBook(t, db, fmt.Sprintf("History %d", i), fantasy.ID)
		shelve(t, db, user.ID, b.ID, models.ShelfRead)
		reviewBook(t, db, user.ID, b.ID, 5, models.ReviewStatusApproved)
	}

	// Baseline is 5.0, so the gate needs avg >= 4.5 or 5+ shelvings
	good := seedBook(t, db, "Good Candidate", fantasy.ID)
	reviewBook(t, db, reviewer.ID, good.ID, 5, models.ReviewStatusApproved)

	poor := seedBook(t, db, "Poor Candidate", fantasy.ID)
	reviewBook(t, db, reviewer.ID, poor.ID, 2, models.ReviewStatusApproved)

	svc := newDBService(db)
	resp, err := svc.Recommend(context.Background(), user.ID, 10)
	require.NoError(t, err)

	require.True(t, resp.IsPersonalized)
	for _, item := range resp.Recommendations {
		if item.ID == good.ID {
			assert.Positive(t, item.Score)
		}
		if item.ID == poor.ID {
			// Only reachable through the fallback top-up
			assert.Zero(t, item.Score)
		}
	}
}

func TestRecommendNeverRepeatsReadBooks(t *testing.T) {
	db := newRecommendationTestDB(t)
	fantasy := seedGenre(t, db, "Fantasy")
	user := seedUser(t, db, "dedupe@test.local")

	var readIDs []string
	for i := 0; i < 5; i++ {
		b := seedBook(t, db, fmt.Sprintf("Read %d", i), fantasy.ID)
		shelve(t, db, user.ID, b.ID, models.ShelfRead)
		readIDs = append(readIDs, b.ID)
	}
	for i := 0; i < 10; i++ {
		seedBook(t, db, fmt.Sprintf("Unread %d", i), fantasy.ID)
	}

	svc := newDBService(db)
	resp, err := svc.Recommend(context.Background(), user.ID, 20)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, item := range resp.Recommendations {
		assert.NotContains(t, readIDs, item.ID)
		assert.False(t, seen[item.ID], "duplicate recommendation %s", item.ID)
		seen[item.ID] = true
	}
}

// Stub repositories exercise the scorer with exact aggregates, which
// is awkward to arrange through seed data.

type stubRecommendationRepo struct {
	readShelf  []repository.ReadShelfEntry
	candidates []repository.BookStats
	fallback   []repository.BookStats

	// genre ids of the last CandidateStats call
	gotGenres []string
}

func (s *stubRecommendationRepo) ReadShelf(ctx context.Context, userID string) ([]repository.ReadShelfEntry, error) {
	return s.readShelf, nil
}

func (s *stubRecommendationRepo) CandidateStats(ctx context.Context, genreIDs, excludeBookIDs []string) ([]repository.BookStats, error) {
	s.gotGenres = genreIDs
	return s.candidates, nil
}

func (s *stubRecommendationRepo) FallbackStats(ctx context.Context, excludeBookIDs []string) ([]repository.BookStats, error) {
	excluded := make(map[string]bool, len(excludeBookIDs))
	for _, id := range excludeBookIDs {
		excluded[id] = true
	}
	var out []repository.BookStats
	for _, b := range s.fallback {
		if !excluded[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}

type stubReviewRepo struct {
	repository.ReviewRepository
	ratings []int
}

func (s stubReviewRepo) RatingsByUser(ctx context.Context, userID string) ([]int, error) {
	return s.ratings, nil
}

func readShelfOfGenre(genreID string, n int) []repository.ReadShelfEntry {
	entries := make([]repository.ReadShelfEntry, n)
	for i := range entries {
		entries[i] = repository.ReadShelfEntry{BookID: uuid.New().String(), GenreID: genreID}
	}
	return entries
}

func TestScoreCapsReviewAndShelfCounts(t *testing.T) {
	genreID := uuid.New().String()
	repo := &stubRecommendationRepo{
		readShelf: readShelfOfGenre(genreID, 3),
		candidates: []repository.BookStats{
			{ID: "a", Title: "A", GenreID: genreID, GenreName: "Fantasy", AvgRating: 4, ReviewCount: 100, ShelvedCount: 200},
			{ID: "b", Title: "B", GenreID: genreID, GenreName: "Fantasy", AvgRating: 4, ReviewCount: 20, ShelvedCount: 50},
		},
	}

	svc := NewRecommendationService(repo, stubReviewRepo{}, DefaultRecommendationWeights())
	resp, err := svc.Recommend(context.Background(), uuid.New().String(), 2)
	require.NoError(t, err)

	// 0.4*4 + 0.3*min(reviews,20) + 0.3*min(shelves,50) = 22.6 for both
	require.Len(t, resp.Recommendations, 2)
	assert.InDelta(t, 22.6, resp.Recommendations[0].Score, 1e-9)
	assert.InDelta(t, 22.6, resp.Recommendations[1].Score, 1e-9)
}

func TestRecommendReasonPriority(t *testing.T) {
	g1 := uuid.New().String()
	g2 := uuid.New().String()
	shelf := append(readShelfOfGenre(g1, 2), readShelfOfGenre(g2, 1)...)

	repo := &stubRecommendationRepo{
		readShelf: shelf,
		candidates: []repository.BookStats{
			{ID: "high", GenreID: g1, GenreName: "Fantasy", AvgRating: 4.8},
			{ID: "popular", GenreID: g1, GenreName: "Fantasy", AvgRating: 4.0, ShelvedCount: 25},
			{ID: "plain", GenreID: g2, GenreName: "Horror", AvgRating: 4.0},
		},
	}

	svc := NewRecommendationService(repo, stubReviewRepo{}, DefaultRecommendationWeights())
	resp, err := svc.Recommend(context.Background(), uuid.New().String(), 3)
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 3)

	reasons := make(map[string]string)
	for _, item := range resp.Recommendations {
		reasons[item.ID] = item.Reason
	}
	assert.Equal(t, "Highly rated (4.8★) in Fantasy", reasons["high"])
	assert.Equal(t, "Popular in Fantasy (25 readers)", reasons["popular"])
	assert.Equal(t, "Recommended based on your Horror preference", reasons["plain"])
}

func TestRecommendTopsUpWithFallback(t *testing.T) {
	genreID := uuid.New().String()
	repo := &stubRecommendationRepo{
		readShelf: readShelfOfGenre(genreID, 3),
		candidates: []repository.BookStats{
			{ID: "c1", GenreID: genreID, GenreName: "Fantasy", AvgRating: 4.5},
			{ID: "c2", GenreID: genreID, GenreName: "Fantasy", AvgRating: 4.2},
		},
	}
	for i := 0; i < 10; i++ {
		repo.fallback = append(repo.fallback, repository.BookStats{
			ID:        fmt.Sprintf("f%d", i),
			GenreID:   genreID,
			GenreName: "Fantasy",
			AvgRating: 3.5,
		})
	}

	svc := NewRecommendationService(repo, stubReviewRepo{}, DefaultRecommendationWeights())
	resp, err := svc.Recommend(context.Background(), uuid.New().String(), 6)
	require.NoError(t, err)

	require.Len(t, resp.Recommendations, 6)
	assert.Positive(t, resp.Recommendations[0].Score)
	assert.Positive(t, resp.Recommendations[1].Score)
	for _, item := range resp.Recommendations[2:] {
		assert.Zero(t, item.Score)
		assert.Equal(t, "Discover Fantasy", item.Reason)
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	repo := &stubRecommendationRepo{}
	for i := 0; i < 30; i++ {
		repo.fallback = append(repo.fallback, repository.BookStats{
			ID:        fmt.Sprintf("f%d", i),
			GenreName: "Fantasy",
			AvgRating: 4.1,
		})
	}

	svc := NewRecommendationService(repo, stubReviewRepo{}, DefaultRecommendationWeights())
	resp, err := svc.Recommend(context.Background(), uuid.New().String(), 0)
	require.NoError(t, err)

	assert.Len(t, resp.Recommendations, 18)
	for _, item := range resp.Recommendations {
		assert.Equal(t, "Popular pick with 4.1★ rating", item.Reason)
	}
}

func TestFallbackRandomTiebreakIsInjectable(t *testing.T) {
	repo := &stubRecommendationRepo{
		fallback: []repository.BookStats{
			{ID: "first", GenreName: "Fantasy", AvgRating: 3.0},
			{ID: "second", GenreName: "Fantasy", AvgRating: 3.0},
			{ID: "third", GenreName: "Fantasy", AvgRating: 3.0},
		},
	}

	svc := NewRecommendationService(repo, stubReviewRepo{}, DefaultRecommendationWeights()).(*recommendationService)
	seq := []float64{0.1, 0.2, 0.3}
	i := 0
	svc.randFloat = func() float64 {
		v := seq[i%len(seq)]
		i++
		return v
	}

	resp, err := svc.Recommend(context.Background(), uuid.New().String(), 3)
	require.NoError(t, err)

	// Equal popularity, so the injected sequence decides: highest draw first
	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, "third", resp.Recommendations[0].ID)
	assert.Equal(t, "second", resp.Recommendations[1].ID)
	assert.Equal(t, "first", resp.Recommendations[2].ID)
}

func TestGenreTallyTiesResolveToEarliestRead(t *testing.T) {
	g1 := uuid.New().String()
	g2 := uuid.New().String()
	g3 := uuid.New().String()
	g4 := uuid.New().String()

	// Two reads per genre, shelved in the order g1..g4 twice over.
	// With the counts tied, the profile keeps the three read first.
	var shelf []repository.ReadShelfEntry
	for i := 0; i < 2; i++ {
		for _, g := range []string{g1, g2, g3, g4} {
			shelf = append(shelf, repository.ReadShelfEntry{BookID: uuid.New().String(), GenreID: g})
		}
	}
	repo := &stubRecommendationRepo{readShelf: shelf}

	svc := NewRecommendationService(repo, stubReviewRepo{}, DefaultRecommendationWeights())
	_, err := svc.Recommend(context.Background(), uuid.New().String(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{g1, g2, g3}, repo.gotGenres)

	// A third read of the latest genre lifts it past the tie.
	repo.readShelf = append(shelf, repository.ReadShelfEntry{BookID: uuid.New().String(), GenreID: g4})
	_, err = svc.Recommend(context.Background(), uuid.New().String(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{g4, g1, g2}, repo.gotGenres)
}

func TestPersonalizedOrderIsStableAcrossCalls(t *testing.T) {
	genreID := uuid.New().String()
	repo := &stubRecommendationRepo{
		readShelf: readShelfOfGenre(genreID, 3),
		candidates: []repository.BookStats{
			// a and b tie on score (2.3); a wins on average rating
			{ID: "c", GenreID: genreID, GenreName: "Fantasy", AvgRating: 4.0},
			{ID: "b", GenreID: genreID, GenreName: "Fantasy", AvgRating: 2.0, ShelvedCount: 5},
			{ID: "a", GenreID: genreID, GenreName: "Fantasy", AvgRating: 5.0, ShelvedCount: 1},
		},
	}

	svc := NewRecommendationService(repo, stubReviewRepo{}, DefaultRecommendationWeights())
	userID := uuid.New().String()

	var first []string
	for call := 0; call < 3; call++ {
		resp, err := svc.Recommend(context.Background(), userID, 3)
		require.NoError(t, err)

		ids := make([]string, len(resp.Recommendations))
		for i, item := range resp.Recommendations {
			ids[i] = item.ID
		}
		if call == 0 {
			assert.Equal(t, []string{"a", "b", "c"}, ids)
			first = ids
			continue
		}
		assert.Equal(t, first, ids)
	}
}

func TestUserBaselineUsesAllOwnReviews(t *testing.T) {
	genreID := uuid.New().String()
	repo := &stubRecommendationRepo{
		readShelf: readShelfOfGenre(genreID, 3),
		candidates: []repository.BookStats{
			// Baseline (2+3+4)/3 = 3.0, gate cutoff 2.5
			{ID: "pass", GenreID: genreID, GenreName: "Fantasy", AvgRating: 2.6},
			{ID: "fail", GenreID: genreID, GenreName: "Fantasy", AvgRating: 2.0},
		},
	}

	svc := NewRecommendationService(repo, stubReviewRepo{ratings: []int{2, 3, 4}}, DefaultRecommendationWeights())
	resp, err := svc.Recommend(context.Background(), uuid.New().String(), 2)
	require.NoError(t, err)

	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "pass", resp.Recommendations[0].ID)
}
