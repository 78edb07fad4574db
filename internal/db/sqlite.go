package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens an SQLite database. dsn is a file path or a "file:" URI.
// Foreign keys are enabled on every connection.
func NewSQLiteDB(dsn string) (*Database, error) {
	sqlDB, err := sql.Open("sqlite", withForeignKeys(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single connection serialises writers and keeps in-memory databases alive.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &Database{SQL: sqlDB, Dialect: DialectSQLite}, nil
}

func withForeignKeys(dsn string) string {
	const pragma = "_pragma=foreign_keys(1)"
	if strings.Contains(dsn, "?") {
		return dsn + "&" + pragma
	}
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	return dsn + "?" + pragma
}
