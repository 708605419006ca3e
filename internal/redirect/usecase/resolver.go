package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-redirector/internal/redirect/domain"

	"go.uber.org/zap"
)

// MaxSlugLength bounds the slugs worth looking up.
const MaxSlugLength = 128

// LinkResolver finds the active link for a slug, consulting the cache before the store.
//
// The cache has no invalidation hook: an edited or deactivated link keeps resolving
// to its cached copy until the TTL expires.
type LinkResolver struct {
	repo    LinkRepository // nil when no store is configured
	cache   SlugCache
	metrics Metrics
	logger  *zap.Logger
}

// NewLinkResolver creates a resolver. repo may be nil, in which case every
// cache miss fails with domain.ErrStoreNotConfigured.
func NewLinkResolver(repo LinkRepository, cache SlugCache, metrics Metrics, logger *zap.Logger) *LinkResolver {
	if metrics == nil {
		metrics = NopMetrics
	}
	return &LinkResolver{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve returns the active link for slug
func (r *LinkResolver) Resolve(ctx context.Context, slug string) (*domain.Link, error) {
	if slug == "" || len(slug) > MaxSlugLength {
		return nil, domain.ErrLinkNotFound
	}

	if link, ok := r.cache.Get(slug); ok {
		r.metrics.CacheLookup(true)
		return link, nil
	}
	r.metrics.CacheLookup(false)

	if r.repo == nil {
		return nil, domain.ErrStoreNotConfigured
	}

	link, err := r.repo.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			return nil, err
		}
		r.logger.Error("failed to look up link",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	if link == nil || !link.Active {
		return nil, domain.ErrLinkNotFound
	}

	r.cache.Set(slug, link)
	return link, nil
}
