package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-redirector/internal/redirect/database"
	"go-redirector/internal/redirect/domain"
	"go-redirector/internal/redirect/usecase"
)

const insertClickQuery = `
INSERT INTO click_events (
    link_id, clicked_at, ip_hash, user_agent, referrer_url, is_bot, bot_reason,
    utm_source, utm_medium, utm_campaign, utm_term, utm_content
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`

const applyEnrichmentQuery = `
UPDATE click_events
SET device_type = ?, browser = ?, os = ?, country_code = ?, region = ?, city = ?,
    traffic_source = ?, query_params = ?, enriched_at = ?
WHERE id = ? AND enriched_at IS NULL AND clicked_at >= ?`

const findClickQuery = `
SELECT id, link_id, clicked_at, ip_hash, user_agent, referrer_url, is_bot, bot_reason,
       utm_source, utm_medium, utm_campaign, utm_term, utm_content,
       device_type, browser, os, country_code, region, city, traffic_source, query_params,
       enriched_at
FROM click_events
WHERE id = ?`

// StoredClick is a click as read back from storage.
type StoredClick struct {
	domain.ClickEvent
	// Enrichment is nil until the background path has patched the row.
	Enrichment *domain.Enrichment
}

// ClickRepository implements usecase.ClickRepository over database/sql.
type ClickRepository struct {
	db      *sql.DB
	dialect database.Dialect
	now     func() int64
}

// NewClickRepository creates a new SQL-backed click repository
func NewClickRepository(db *sql.DB, dialect database.Dialect) *ClickRepository {
	return &ClickRepository{
		db:      db,
		dialect: dialect,
		now:     timeNowMillis,
	}
}

var _ usecase.ClickRepository = (*ClickRepository)(nil)

// InsertClick stores a click and returns the generated id
func (r *ClickRepository) InsertClick(ctx context.Context, click *domain.ClickEvent) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertClickQuery),
		click.LinkID,
		click.ClickedAt.UnixMilli(),
		click.IPHash,
		click.UserAgent,
		click.ReferrerURL,
		click.IsBot,
		click.BotReason,
		click.UTMSource,
		click.UTMMedium,
		click.UTMCampaign,
		click.UTMTerm,
		click.UTMContent,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert click for link %d: %w", click.LinkID, err)
	}
	return id, nil
}

// ApplyEnrichment patches the derived fields onto a not-yet-enriched click
func (r *ClickRepository) ApplyEnrichment(ctx context.Context, clickID int64, e domain.Enrichment, notBefore int64) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(applyEnrichmentQuery),
		e.DeviceType,
		e.Browser,
		e.OS,
		e.CountryCode,
		e.Region,
		e.City,
		e.TrafficSource,
		e.QueryParams,
		r.now(),
		clickID,
		notBefore,
	)
	if err != nil {
		return fmt.Errorf("enrich click %d: %w", clickID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("enrich click %d: %w", clickID, err)
	}
	if affected == 0 {
		return domain.ErrClickNotFound
	}
	return nil
}

// CountByLink returns the number of clicks recorded for a link
func (r *ClickRepository) CountByLink(ctx context.Context, linkID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind("SELECT COUNT(*) FROM click_events WHERE link_id = ?"), linkID).Scan(&count)
	return count, err
}

// FindClick reads one click back, including enrichment if present
func (r *ClickRepository) FindClick(ctx context.Context, clickID int64) (*StoredClick, error) {
	var (
		c          StoredClick
		clickedAt  int64
		enrichedAt sql.NullInt64
	)
	var device, browser, osName, country, region, city, src, qp sql.NullString

	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(findClickQuery), clickID).Scan(
		&c.ID, &c.LinkID, &clickedAt, &c.IPHash, &c.UserAgent, &c.ReferrerURL, &c.IsBot, &c.BotReason,
		&c.UTMSource, &c.UTMMedium, &c.UTMCampaign, &c.UTMTerm, &c.UTMContent,
		&device, &browser, &osName, &country, &region, &city, &src, &qp,
		&enrichedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClickNotFound
		}
		return nil, err
	}

	c.ClickedAt = millisToTime(clickedAt)
	if enrichedAt.Valid {
		c.Enrichment = &domain.Enrichment{
			DeviceType:    device.String,
			Browser:       browser.String,
			OS:            osName.String,
			CountryCode:   country.String,
			Region:        region.String,
			City:          city.String,
			TrafficSource: src.String,
			QueryParams:   qp.String,
		}
	}
	return &c, nil
}
