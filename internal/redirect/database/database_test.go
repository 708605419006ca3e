package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect_Rebind(t *testing.T) {
	query := "SELECT id FROM short_links WHERE slug = ? AND active = ?"

	assert.Equal(t, query, DialectSQLite.Rebind(query))
	assert.Equal(t, "SELECT id FROM short_links WHERE slug = $1 AND active = $2", DialectPostgres.Rebind(query))
}

func TestOpen_DefaultsToSQLite(t *testing.T) {
	db, dialect, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DialectSQLite, dialect)
	assert.NoError(t, db.Ping())
}

func TestRunMigrations_SQLite_IsIdempotent(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db, DialectSQLite))
	require.NoError(t, RunMigrations(db, DialectSQLite))

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('short_links', 'click_events')").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRunMigrations_UnknownDialect(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, RunMigrations(db, Dialect("oracle")))
}
