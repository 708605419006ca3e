package sqlstore

import (
	"database/sql"
	"testing"

	"go-redirector/internal/redirect/database"
	"go-redirector/internal/redirect/domain"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, database.DialectSQLite))
	return db
}

func insertLink(t *testing.T, db *sql.DB, link domain.Link) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO short_links (slug, destination_url, append_utms, utm_source, utm_medium, utm_campaign, utm_term, utm_content, active)
		VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), ?)
		RETURNING id`,
		link.Slug, link.DestinationURL, link.AppendUTMs,
		link.UTMSource, link.UTMMedium, link.UTMCampaign, link.UTMTerm, link.UTMContent,
		link.Active,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
