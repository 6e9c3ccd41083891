package catalog

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/providers"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/repositories"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/observability"
	apperrors "github.com/ankorline/yachtcharterdiscovery/backend/pkg/errors"
)

const catalogListCacheKey = "catalog:yachts"

// CachedCatalogAdapter wraps a YachtRepository with time-bounded reuse of a
// successful fetch. The loader itself stays cache-free; revalidation policy
// lives here, at the caller layer.
type CachedCatalogAdapter struct {
	repo       repositories.YachtRepository
	cache      providers.CacheProvider
	ttlSeconds int
	metrics    *observability.Metrics
}

// NewCachedCatalogAdapter creates a caching decorator around repo
func NewCachedCatalogAdapter(repo repositories.YachtRepository, cache providers.CacheProvider, ttlSeconds int, metrics *observability.Metrics) repositories.YachtRepository {
	return &CachedCatalogAdapter{
		repo:       repo,
		cache:      cache,
		ttlSeconds: ttlSeconds,
		metrics:    metrics,
	}
}

// List returns the cached catalog when fresh, falling through to the
// wrapped repository otherwise. Only successful loads are cached.
func (a *CachedCatalogAdapter) List(ctx context.Context) ([]*entities.Yacht, error) {
	if cached, err := a.cache.Get(ctx, catalogListCacheKey); err == nil {
		var yachts []*entities.Yacht
		if unmarshalErr := json.Unmarshal(cached, &yachts); unmarshalErr == nil {
			if a.metrics != nil {
				observability.RecordCacheHit(ctx, a.metrics, catalogListCacheKey)
			}
			return yachts, nil
		} else {
			log.Warn().Err(unmarshalErr).Msg("failed to unmarshal cached catalog")
		}
	}

	if a.metrics != nil {
		observability.RecordCacheMiss(ctx, a.metrics, catalogListCacheKey)
	}

	yachts, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(yachts); err == nil {
		if err := a.cache.Set(ctx, catalogListCacheKey, data, a.ttlSeconds); err != nil {
			log.Warn().Err(err).Msg("failed to cache catalog")
		}
	}

	return yachts, nil
}

// GetBySlug resolves a single yacht through the cached list
func (a *CachedCatalogAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Yacht, error) {
	yachts, err := a.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, yacht := range yachts {
		if yacht.Slug == slug {
			return yacht, nil
		}
	}
	return nil, apperrors.NewNotFoundError("yacht not found: " + slug)
}
