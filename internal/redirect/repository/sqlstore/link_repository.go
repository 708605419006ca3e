package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"go-redirector/internal/redirect/database"
	"go-redirector/internal/redirect/domain"
	"go-redirector/internal/redirect/usecase"
)

const findActiveBySlugQuery = `
SELECT id, slug, destination_url, append_utms,
       utm_source, utm_medium, utm_campaign, utm_term, utm_content, active
FROM short_links
WHERE slug = ? AND active = ?
LIMIT 1`

// LinkRepository implements usecase.LinkRepository over database/sql.
type LinkRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewLinkRepository creates a new SQL-backed link repository
func NewLinkRepository(db *sql.DB, dialect database.Dialect) *LinkRepository {
	return &LinkRepository{db: db, dialect: dialect}
}

var _ usecase.LinkRepository = (*LinkRepository)(nil)

// FindActiveBySlug retrieves the active link for slug
func (r *LinkRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Link, error) {
	var link domain.Link
	var source, medium, campaign, term, content sql.NullString

	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(findActiveBySlugQuery), slug, true).Scan(
		&link.ID,
		&link.Slug,
		&link.DestinationURL,
		&link.AppendUTMs,
		&source,
		&medium,
		&campaign,
		&term,
		&content,
		&link.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}

	link.UTMSource = source.String
	link.UTMMedium = medium.String
	link.UTMCampaign = campaign.String
	link.UTMTerm = term.String
	link.UTMContent = content.String

	return &link, nil
}
