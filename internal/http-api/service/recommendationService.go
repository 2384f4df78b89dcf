package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/repository"
)

var ErrInvalidUserID = errors.New("invalid user ID")

// RecommendationWeights configures the scoring formula, the quality
// gate and the reason thresholds. The defaults are tuning choices, not
// invariants, so they are injected rather than inlined.
type RecommendationWeights struct {
	// Personalized score = RatingWeight·avg + ReviewWeight·min(reviews,ReviewCap)
	// + ShelfWeight·min(shelves,ShelfCap)
	RatingWeight float64
	ReviewWeight float64
	ReviewCap    int64
	ShelfWeight  float64
	ShelfCap     int64

	// Gate: keep a candidate when avg >= baseline-BaselineSlack or
	// shelves >= MinShelved
	BaselineSlack float64
	MinShelved    int64

	// Personalization threshold and profile size
	MinHistory int
	TopGenres  int

	// Reason thresholds
	AffinityThreshold int
	HighRating        float64
	PopularShelves    int64

	// Fallback popularity = FallbackRatingWeight·avg +
	// FallbackShelfWeight·min(shelves,FallbackShelfCap)
	FallbackRatingWeight float64
	FallbackShelfWeight  float64
	FallbackShelfCap     int64
	FallbackGoodRating   float64

	// Baseline when the user has no reviews
	DefaultBaseline float64

	DefaultLimit int
}

func DefaultRecommendationWeights() RecommendationWeights {
	return RecommendationWeights{
		RatingWeight:         0.4,
		ReviewWeight:         0.3,
		ReviewCap:            20,
		ShelfWeight:          0.3,
		ShelfCap:             50,
		BaselineSlack:        0.5,
		MinShelved:           5,
		MinHistory:           3,
		TopGenres:            3,
		AffinityThreshold:    3,
		HighRating:           4.5,
		PopularShelves:       20,
		FallbackRatingWeight: 0.6,
		FallbackShelfWeight:  0.4,
		FallbackShelfCap:     30,
		FallbackGoodRating:   4.0,
		DefaultBaseline:      4.0,
		DefaultLimit:         18,
	}
}

type RecommendationService interface {
	Recommend(ctx context.Context, userID string, limit int) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	repo       repository.RecommendationRepository
	reviewRepo repository.ReviewRepository
	weights    RecommendationWeights

	// randFloat breaks popularity ties in the fallback pool; swapped
	// out in tests for determinism
	randFloat func() float64
}

func NewRecommendationService(
	repo repository.RecommendationRepository,
	reviewRepo repository.ReviewRepository,
	weights RecommendationWeights,
) RecommendationService {
	return &recommendationService{
		repo:       repo,
		reviewRepo: reviewRepo,
		weights:    weights,
		randFloat:  rand.Float64,
	}
}

// genreTally counts read books per genre, preserving first-encounter
// order so count ties resolve to the earliest-seen genre.
type genreTally struct {
	order  []string
	counts map[string]int
}

func newGenreTally() *genreTally {
	return &genreTally{counts: make(map[string]int)}
}

func (t *genreTally) add(genreID string) {
	if _, seen := t.counts[genreID]; !seen {
		t.order = append(t.order, genreID)
	}
	t.counts[genreID]++
}

// top returns the k most-read genre ids, stable over insertion order.
func (t *genreTally) top(k int) []string {
	ranked := make([]string, len(t.order))
	copy(ranked, t.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.counts[ranked[i]] > t.counts[ranked[j]]
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

func (s *recommendationService) Recommend(ctx context.Context, userID string, limit int) (*dto.RecommendationResponse, error) {
	// Reject malformed ids before touching the store
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}

	if limit <= 0 {
		limit = s.weights.DefaultLimit
	}

	readShelf, err := s.repo.ReadShelf(ctx, userID)
	if err != nil {
		return nil, err
	}

	readIDs := make([]string, len(readShelf))
	for i, entry := range readShelf {
		readIDs[i] = entry.BookID
	}

	hasEnoughHistory := len(readShelf) >= s.weights.MinHistory

	var recommendations []dto.RecommendationItem
	if hasEnoughHistory {
		recommendations, err = s.personalizedPicks(ctx, userID, readShelf, readIDs, limit)
		if err != nil {
			return nil, err
		}
	}

	if len(recommendations) < limit {
		needed := limit - len(recommendations)

		exclude := make([]string, 0, len(readIDs)+len(recommendations))
		exclude = append(exclude, readIDs...)
		for _, item := range recommendations {
			exclude = append(exclude, item.ID)
		}

		fallback, err := s.fallbackPicks(ctx, exclude, needed)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, fallback...)
	}

	return &dto.RecommendationResponse{
		Recommendations: recommendations,
		IsPersonalized:  hasEnoughHistory,
		BooksRead:       len(readShelf),
	}, nil
}

func (s *recommendationService) personalizedPicks(
	ctx context.Context,
	userID string,
	readShelf []repository.ReadShelfEntry,
	readIDs []string,
	limit int,
) ([]dto.RecommendationItem, error) {
	w := s.weights

	tally := newGenreTally()
	for _, entry := range readShelf {
		tally.add(entry.GenreID)
	}
	topGenres := tally.top(w.TopGenres)

	baseline, err := s.userBaseline(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.CandidateStats(ctx, topGenres, readIDs)
	if err != nil {
		return nil, err
	}

	type scored struct {
		repository.BookStats
		score float64
	}

	gated := make([]scored, 0, len(stats))
	for _, b := range stats {
		// Quality gate: decently rated for this user, or broadly shelved
		if b.AvgRating < baseline-w.BaselineSlack && b.ShelvedCount < w.MinShelved {
			continue
		}
		score := w.RatingWeight*b.AvgRating +
			w.ReviewWeight*float64(min(b.ReviewCount, w.ReviewCap)) +
			w.ShelfWeight*float64(min(b.ShelvedCount, w.ShelfCap))
		gated = append(gated, scored{BookStats: b, score: score})
	}

	sort.Slice(gated, func(i, j int) bool {
		if gated[i].score != gated[j].score {
			return gated[i].score > gated[j].score
		}
		return gated[i].AvgRating > gated[j].AvgRating
	})

	if len(gated) > limit {
		gated = gated[:limit]
	}

	items := make([]dto.RecommendationItem, 0, len(gated))
	for _, b := range gated {
		items = append(items, dto.RecommendationItem{
			ID:           b.ID,
			Title:        b.Title,
			Author:       b.Author,
			CoverImage:   b.CoverImage,
			Genre:        dto.RecommendationGenre{ID: b.GenreID, Name: b.GenreName},
			AvgRating:    b.AvgRating,
			ShelvedCount: b.ShelvedCount,
			ReviewCount:  b.ReviewCount,
			Score:        b.score,
			Reason:       s.personalizedReason(b.BookStats, tally.counts[b.GenreID]),
		})
	}
	return items, nil
}

// personalizedReason picks the most specific justification that applies.
func (s *recommendationService) personalizedReason(b repository.BookStats, genreCount int) string {
	w := s.weights
	switch {
	case genreCount >= w.AffinityThreshold:
		return fmt.Sprintf("Matches your love for %s (%d books read)", b.GenreName, genreCount)
	case b.AvgRating >= w.HighRating:
		return fmt.Sprintf("Highly rated (%.1f★) in %s", b.AvgRating, b.GenreName)
	case b.ShelvedCount >= w.PopularShelves:
		return fmt.Sprintf("Popular in %s (%d readers)", b.GenreName, b.ShelvedCount)
	default:
		return fmt.Sprintf("Recommended based on your %s preference", b.GenreName)
	}
}

func (s *recommendationService) fallbackPicks(ctx context.Context, exclude []string, needed int) ([]dto.RecommendationItem, error) {
	w := s.weights

	stats, err := s.repo.FallbackStats(ctx, exclude)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		repository.BookStats
		popularity float64
		tiebreak   float64
	}

	pool := make([]ranked, len(stats))
	for i, b := range stats {
		pool[i] = ranked{
			BookStats: b,
			popularity: w.FallbackRatingWeight*b.AvgRating +
				w.FallbackShelfWeight*float64(min(b.ShelvedCount, w.FallbackShelfCap)),
			// random component reshuffles equally-popular books
			// between requests
			tiebreak: s.randFloat(),
		}
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].popularity != pool[j].popularity {
			return pool[i].popularity > pool[j].popularity
		}
		return pool[i].tiebreak > pool[j].tiebreak
	})

	if len(pool) > needed {
		pool = pool[:needed]
	}

	items := make([]dto.RecommendationItem, 0, len(pool))
	for _, b := range pool {
		reason := fmt.Sprintf("Discover %s", b.GenreName)
		if b.AvgRating >= w.FallbackGoodRating {
			reason = fmt.Sprintf("Popular pick with %.1f★ rating", b.AvgRating)
		}
		items = append(items, dto.RecommendationItem{
			ID:           b.ID,
			Title:        b.Title,
			Author:       b.Author,
			CoverImage:   b.CoverImage,
			Genre:        dto.RecommendationGenre{ID: b.GenreID, Name: b.GenreName},
			AvgRating:    b.AvgRating,
			ShelvedCount: b.ShelvedCount,
			Reason:       reason,
		})
	}
	return items, nil
}

// userBaseline is the user's mean given rating across all their
// reviews, or the neutral default for users with none.
func (s *recommendationService) userBaseline(ctx context.Context, userID string) (float64, error) {
	ratings, err := s.reviewRepo.RatingsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return s.weights.DefaultBaseline, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), nil
}
