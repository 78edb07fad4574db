package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	appMigrations "github.com/yigit/academies/internal/app/migrations"
	"github.com/yigit/academies/internal/db"
)

// NewTestDSN generates a DSN for an in-memory SQLite database for testing purposes.
func NewTestDSN(testName string) string {
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(testName)
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

// NewTestDatabase opens a migrated in-memory database private to t.
// It is closed when the test ends.
func NewTestDatabase(t *testing.T) *db.Database {
	t.Helper()

	database, err := db.NewSQLiteDB(NewTestDSN(t.Name()))
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator, err := appMigrations.NewMigrator(database, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, migrator.Migrate(context.Background()))

	return database
}
