package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OmarAymanHeikal/Cms-Discovery/cache"
	"github.com/OmarAymanHeikal/Cms-Discovery/models"
)

// ProgramSearcher is the slice of the store the discovery surface needs.
type ProgramSearcher interface {
	Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult[models.Program], error)
}

// DiscoveryService serves the public read paths. Every criteria it builds
// forces Published status, and the hot listings sit behind the read-through
// cache. Writes never invalidate these entries; staleness up to the TTL is
// the accepted tradeoff.
type DiscoveryService struct {
	store  ProgramSearcher
	cache  cache.Store
	logger *zap.Logger
}

func NewDiscoveryService(store ProgramSearcher, c cache.Store, logger *zap.Logger) *DiscoveryService {
	return &DiscoveryService{store: store, cache: c, logger: logger}
}

// Search runs a public search, cached for a short window.
func (s *DiscoveryService) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult[models.Program], error) {
	status := models.StatusPublished
	criteria.Status = &status
	criteria.Normalize(models.MaxPublicPageSize)

	key := "search|" + criteria.CacheKey()
	return cache.GetOrCompute(s.cache, key, cache.SearchTTL, func() (*models.SearchResult[models.Program], error) {
		return s.store.Search(ctx, criteria)
	})
}

// Trending lists the most viewed published programs.
func (s *DiscoveryService) Trending(ctx context.Context, count int) ([]models.Program, error) {
	count = clampListCount(count)
	key := fmt.Sprintf("trending|%d", count)
	return cache.GetOrCompute(s.cache, key, cache.TrendingTTL, func() ([]models.Program, error) {
		return s.listPublished(ctx, count, models.SortByViewCount)
	})
}

// Recent lists the latest published programs.
func (s *DiscoveryService) Recent(ctx context.Context, count int) ([]models.Program, error) {
	count = clampListCount(count)
	key := fmt.Sprintf("recent|%d", count)
	return cache.GetOrCompute(s.cache, key, cache.RecentTTL, func() ([]models.Program, error) {
		return s.listPublished(ctx, count, models.SortByPublishedDate)
	})
}

// clampListCount applies the public paging bounds before the count reaches
// a cache key, so equivalent requests share one slot.
func clampListCount(count int) int {
	if count < 1 {
		return models.DefaultPageSize
	}
	if count > models.MaxPublicPageSize {
		return models.MaxPublicPageSize
	}
	return count
}

// ByCategory pages through published programs in one category, newest
// publication first.
func (s *DiscoveryService) ByCategory(ctx context.Context, categoryID uuid.UUID, page, pageSize int) (*models.SearchResult[models.Program], error) {
	return s.Search(ctx, models.SearchCriteria{
		CategoryIDs:    []uuid.UUID{categoryID},
		Page:           page,
		PageSize:       pageSize,
		SortBy:         models.SortByPublishedDate,
		SortDescending: true,
	})
}

// ByTag pages through published programs carrying one tag.
func (s *DiscoveryService) ByTag(ctx context.Context, tagID uuid.UUID, page, pageSize int) (*models.SearchResult[models.Program], error) {
	return s.Search(ctx, models.SearchCriteria{
		TagIDs:         []uuid.UUID{tagID},
		Page:           page,
		PageSize:       pageSize,
		SortBy:         models.SortByPublishedDate,
		SortDescending: true,
	})
}

func (s *DiscoveryService) listPublished(ctx context.Context, count int, sortBy models.SortKey) ([]models.Program, error) {
	status := models.StatusPublished
	criteria := models.SearchCriteria{
		Status:         &status,
		Page:           1,
		PageSize:       count,
		SortBy:         sortBy,
		SortDescending: true,
	}
	criteria.Normalize(models.MaxPublicPageSize)

	result, err := s.store.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}
