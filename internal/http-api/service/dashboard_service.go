package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookworm/internal/cache"
	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/repository"
)

const topRatedLimit = 5

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	repo     repository.StatsRepository
	cache    cache.StatsCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewDashboardService(repo repository.StatsRepository, statsCache cache.StatsCache, cacheTTL time.Duration, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		cache:    statsCache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	var cached dto.DashboardStats
	err := s.cache.Get(ctx, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// Degrade to a recompute when the cache is unreachable
		s.logger.Warn("stats cache read failed", "error", err)
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, stats, s.cacheTTL); err != nil {
		s.logger.Warn("stats cache write failed", "error", err)
	}
	return stats, nil
}

func (s *dashboardService) compute(ctx context.Context) (*dto.DashboardStats, error) {
	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}

	booksPerGenre, err := s.repo.BooksPerGenre(ctx)
	if err != nil {
		return nil, err
	}
	shelves, err := s.repo.ShelfDistribution(ctx)
	if err != nil {
		return nil, err
	}
	topRated, err := s.repo.TopRatedBooks(ctx, topRatedLimit)
	if err != nil {
		return nil, err
	}
	roles, err := s.repo.UserRoles(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Overview: overview,
		Charts: dto.DashboardCharts{
			BooksPerGenre:     booksPerGenre,
			ShelfDistribution: shelves,
			TopRatedBooks:     topRated,
			UserRoles:         roles,
		},
	}, nil
}
