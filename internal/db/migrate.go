package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate runs all SQLite schema migrations. Statements are idempotent so the
// full list is replayed on every open.
func Migrate(db *sql.DB) error {
	return runMigrations(context.Background(), db, sqliteMigrations)
}

// MigrateMySQL runs the MySQL flavour of the schema.
func MigrateMySQL(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, mysqlMigrations)
}

func runMigrations(ctx context.Context, db *sql.DB, stmts []string) error {
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS time_entries (
		id             TEXT PRIMARY KEY,
		entry_date     TEXT NOT NULL,
		worker         TEXT NOT NULL,
		category       TEXT NOT NULL,
		duration_hours REAL NOT NULL CHECK(duration_hours >= 0),
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_date ON time_entries(entry_date)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_worker ON time_entries(worker)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_category ON time_entries(category)`,
}

// MySQL has no CREATE INDEX IF NOT EXISTS, so indexes are declared inline.
// Label columns use a binary collation so filters match exactly.
var mysqlMigrations = []string{
	`CREATE TABLE IF NOT EXISTS time_entries (
		id             VARCHAR(36)  NOT NULL PRIMARY KEY,
		entry_date     CHAR(10)     COLLATE utf8mb4_bin NOT NULL,
		worker         VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		category       VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		duration_hours DOUBLE       NOT NULL,
		notes          TEXT         NOT NULL,
		created_at     VARCHAR(40)  NOT NULL,
		INDEX idx_time_entries_date (entry_date),
		INDEX idx_time_entries_worker (worker),
		INDEX idx_time_entries_category (category),
		CONSTRAINT chk_duration_non_negative CHECK (duration_hours >= 0)
	) DEFAULT CHARSET = utf8mb4`,
}
