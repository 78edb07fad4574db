package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/yigit/academies/internal/db"
)

//go:embed sql
var files embed.FS

// Migrator manages database migrations
type Migrator struct {
	db     *db.Database
	sb     squirrel.StatementBuilderType
	source fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a migrator for the embedded schema of the database's dialect
func NewMigrator(database *db.Database, lgr zerolog.Logger) (*Migrator, error) {
	source, err := fs.Sub(files, path.Join("sql", string(database.Dialect)))
	if err != nil {
		return nil, fmt.Errorf("no migrations for dialect %s: %w", database.Dialect, err)
	}
	return &Migrator{
		db:     database,
		sb:     database.StatementBuilder(),
		source: source,
		logger: lgr,
	}, nil
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := m.db.SQL.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := m.sb.Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration status query: %w", err)
	}

	var count int
	if err := m.db.SQL.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// recordMigration marks a migration as applied inside tx
func (m *Migrator) recordMigration(ctx context.Context, tx *sql.Tx, version string) error {
	query, args, err := m.sb.Insert("schema_migrations").
		Columns("version").
		Values(version).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build migration record query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Versions lists the embedded migration files in execution order
func (m *Migrator) Versions() ([]string, error) {
	entries, err := fs.ReadDir(m.source, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

// Migrate applies every embedded migration that has not been applied yet
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	sqlFiles, err := m.Versions()
	if err != nil {
		return err
	}

	for _, file := range sqlFiles {
		if err := m.migrateFile(ctx, file); err != nil {
			return err
		}
	}
	return nil
}

// migrateFile executes the statements of one file in a transaction
func (m *Migrator) migrateFile(ctx context.Context, filename string) error {
	// "001_init.sql" => "001"
	version := strings.Split(filename, "_")[0]

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("migration", filename).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(m.source, filename)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	err = m.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range splitStatements(string(content)) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("error occurred during SQL migration %s: %w", filename, err)
			}
		}
		return m.recordMigration(ctx, tx, version)
	})
	if err != nil {
		return err
	}

	m.logger.Info().Str("migration", filename).Msg("Migration file successfully applied")
	return nil
}

// splitStatements splits a migration file on semicolons. Migration files
// must not contain semicolons inside literals.
func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
