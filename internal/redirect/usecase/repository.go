package usecase

import (
	"context"

	"go-redirector/internal/redirect/domain"
)

// LinkRepository is the read side of the link-management collaborator.
type LinkRepository interface {
	// FindActiveBySlug returns the single active link for slug, or domain.ErrLinkNotFound.
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Link, error)
}

// ClickRepository persists click events.
type ClickRepository interface {
	// InsertClick stores a new click and returns its id.
	InsertClick(ctx context.Context, click *domain.ClickEvent) (int64, error)
	// ApplyEnrichment patches an existing click. It returns domain.ErrClickNotFound when
	// the row does not exist, was already enriched, or is older than notBefore.
	ApplyEnrichment(ctx context.Context, clickID int64, enrichment domain.Enrichment, notBefore int64) error
}
