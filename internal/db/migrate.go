package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent; ALTER TABLE
// re-runs are tolerated so the full list can be replayed on every start.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS shifts (
		id         TEXT PRIMARY KEY,
		shift_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_span
		ON shifts(shift_date, start_time, end_time)`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(shift_date)`,

	// Single-row settings table; the row is keyed at 1 and upserted.
	`CREATE TABLE IF NOT EXISTS wage_settings (
		id            INTEGER PRIMARY KEY CHECK(id = 1),
		preset_tier   INTEGER,
		custom_rate   TEXT,
		pause_enabled INTEGER NOT NULL DEFAULT 1,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS bonus_windows (
		id        TEXT PRIMARY KEY,
		day_kind  TEXT NOT NULL
		          CHECK(day_kind IN ('weekday','saturday','sunday')),
		from_min  INTEGER NOT NULL CHECK(from_min BETWEEN 0 AND 1439),
		to_min    INTEGER NOT NULL CHECK(to_min BETWEEN 0 AND 1439),
		rate      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bonus_windows_day ON bonus_windows(day_kind)`,
}
