package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/cache"
	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"
)

type countingStatsRepo struct {
	calls int
}

func (r *countingStatsRepo) Overview(ctx context.Context) (dto.DashboardOverview, error) {
	r.calls++
	return dto.DashboardOverview{TotalBooks: 3, TotalUsers: 2}, nil
}

func (r *countingStatsRepo) BooksPerGenre(ctx context.Context) ([]dto.GenreCount, error) {
	return []dto.GenreCount{{Genre: "Fantasy", Count: 3}}, nil
}

func (r *countingStatsRepo) ShelfDistribution(ctx context.Context) ([]dto.ShelfCount, error) {
	return nil, nil
}

func (r *countingStatsRepo) TopRatedBooks(ctx context.Context, limit int) ([]dto.TopRatedBook, error) {
	return nil, nil
}

func (r *countingStatsRepo) UserRoles(ctx context.Context) ([]dto.RoleCount, error) {
	return nil, nil
}

type memStatsCache struct {
	raw []byte
}

func (c *memStatsCache) Get(ctx context.Context, target any) error {
	if c.raw == nil {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(c.raw, target)
}

func (c *memStatsCache) Set(ctx context.Context, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.raw = raw
	return nil
}

func TestDashboardStatsServedFromCache(t *testing.T) {
	repo := &countingStatsRepo{}
	svc := NewDashboardService(repo, &memStatsCache{}, time.Minute, slog.Default())

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Overview.TotalBooks)
	assert.Equal(t, 1, repo.calls)

	second, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Overview, second.Overview)
	assert.Equal(t, 1, repo.calls, "cached response must not recompute")
}

func TestDashboardStatsAggregates(t *testing.T) {
	db := newRecommendationTestDB(t)
	fantasy := seedGenre(t, db, "Fantasy")
	horror := seedGenre(t, db, "Horror")
	user := seedUser(t, db, "stats@test.local")

	b1 := seedBook(t, db, "Stats One", fantasy.ID)
	b2 := seedBook(t, db, "Stats Two", fantasy.ID)
	seedBook(t, db, "Stats Three", horror.ID)

	shelve(t, db, user.ID, b1.ID, models.ShelfRead)
	shelve(t, db, user.ID, b2.ID, models.ShelfWant)
	reviewBook(t, db, user.ID, b1.ID, 5, models.ReviewStatusApproved)
	reviewBook(t, db, user.ID, b2.ID, 4, models.ReviewStatusPending)

	svc := NewDashboardService(repository.NewStatsRepository(db), cache.NoopStatsCache{}, time.Minute, slog.Default())
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Overview.TotalBooks)
	assert.Equal(t, int64(1), stats.Overview.TotalUsers)
	assert.Equal(t, int64(2), stats.Overview.TotalReviews)
	assert.Equal(t, int64(1), stats.Overview.PendingReviews)
	assert.Equal(t, int64(1), stats.Overview.RecentUsers)

	require.Len(t, stats.Charts.BooksPerGenre, 2)
	assert.Equal(t, "Fantasy", stats.Charts.BooksPerGenre[0].Genre)
	assert.Equal(t, int64(2), stats.Charts.BooksPerGenre[0].Count)

	require.Len(t, stats.Charts.TopRatedBooks, 1)
	assert.Equal(t, "Stats One", stats.Charts.TopRatedBooks[0].Title)
	assert.InDelta(t, 5.0, stats.Charts.TopRatedBooks[0].AvgRating, 1e-9)
}
