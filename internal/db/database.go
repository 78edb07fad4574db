package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/academies/internal/config"
	"github.com/yigit/academies/internal/pkg/logger"
)

// Dialect identifies the SQL flavour spoken by the database.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Database wraps the database/sql handle used by the repositories and the
// resources owned alongside it.
type Database struct {
	SQL     *sql.DB
	Dialect Dialect
	closers []func()
}

// Open connects to the database selected by cfg.Database.Driver.
func Open(cfg *config.Config) (*Database, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return NewPostgresDB(cfg)
	case config.DriverSQLite:
		return NewSQLiteDB(cfg.Database.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// StatementBuilder returns a squirrel builder using the dialect's placeholders.
func (d *Database) StatementBuilder() squirrel.StatementBuilderType {
	if d.Dialect == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Ping verifies the connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	return d.SQL.PingContext(ctx)
}

// Close closing method
func (d *Database) Close() {
	if d.SQL != nil {
		if err := d.SQL.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close database handle")
		}
	}
	for _, closeFn := range d.closers {
		closeFn()
	}
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs a function within a transaction
func (d *Database) WithTransaction(ctx context.Context, fn TransactionFn) error {
	// Add timeout to context if not already present
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := d.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback on panic
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
