package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hiresphere/hiresphere/internal/storage/migrations"
)

// Postgres has no BLOB type, so the dialects carry separate migration
// directories. Guard the postgres one against sqlite-only column types,
// since no Postgres server is available to unit tests.
func TestMigrations_PostgresDialectAvoidsSQLiteTypes(t *testing.T) {
	raw, err := migrations.Migrations.ReadFile("postgres/00001_create_slots.sql")
	require.NoError(t, err)
	require.Contains(t, string(raw), "BYTEA")
	require.NotContains(t, string(raw), "BLOB")
}

func TestMigrations_DialectsStayInStep(t *testing.T) {
	lite, err := migrations.Migrations.ReadDir("sqlite")
	require.NoError(t, err)
	pg, err := migrations.Migrations.ReadDir("postgres")
	require.NoError(t, err)

	require.Len(t, pg, len(lite))
	for i := range lite {
		require.Equal(t, lite[i].Name(), pg[i].Name())
	}
}
