package migrations_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academies/internal/app/migrations"
	"github.com/yigit/academies/internal/db"
	"github.com/yigit/academies/internal/testutil"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	database, err := db.NewSQLiteDB(testutil.NewTestDSN(t.Name()))
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator, err := migrations.NewMigrator(database, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, migrator.Migrate(ctx))
	require.NoError(t, migrator.Migrate(ctx), "second run skips applied files")

	versions, err := migrator.Versions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)

	var applied int
	require.NoError(t, database.SQL.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, len(versions), applied)
}

func TestMigrate_CreatesConstraints(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDatabase(t)

	_, err := database.SQL.ExecContext(ctx, "INSERT INTO schools (name, web) VALUES ('Lincoln High', 'lincoln.edu')")
	require.NoError(t, err)

	_, err = database.SQL.ExecContext(ctx, "INSERT INTO schools (name, web) VALUES ('LINCOLN HIGH', 'x.edu')")
	assert.Error(t, err, "name is unique case-insensitively")

	_, err = database.SQL.ExecContext(ctx, "INSERT INTO students (first_name, last_name, school_id) VALUES ('Ada', 'Lovelace', 42)")
	assert.Error(t, err, "foreign keys are enforced")
}
