package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS imports (
		id             BIGSERIAL PRIMARY KEY,
		import_id      TEXT NOT NULL UNIQUE,
		filename       TEXT NOT NULL,
		uploaded_at    TIMESTAMPTZ NOT NULL,
		total_rows     INTEGER NOT NULL,
		imported_rows  INTEGER NOT NULL,
		errors         INTEGER NOT NULL,
		invalid_rows   INTEGER NOT NULL DEFAULT 0,
		duplicate_rows INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL CHECK (status IN ('processing', 'completed', 'error')),
		error          TEXT,
		archive_path   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id          BIGSERIAL PRIMARY KEY,
		import_id   TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		name        TEXT NOT NULL,
		department  TEXT,
		position    TEXT,
		email       TEXT,
		created_at  TIMESTAMPTZ NOT NULL,
		UNIQUE (import_id, employee_id)
	)`,
	`CREATE INDEX IF NOT EXISTS employees_created_at_idx ON employees (created_at)`,
	`CREATE TABLE IF NOT EXISTS attendance_events (
		id             BIGSERIAL PRIMARY KEY,
		import_id      TEXT NOT NULL,
		employee_id    TEXT NOT NULL,
		event_date     TIMESTAMPTZ NOT NULL,
		check_in       TIMESTAMPTZ,
		check_out      TIMESTAMPTZ,
		break_duration INTEGER,
		hours_worked   DOUBLE PRECISION,
		event_type     TEXT NOT NULL CHECK (event_type IN ('check_in', 'check_out', 'break_start', 'break_end')),
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS attendance_events_created_at_idx ON attendance_events (created_at)`,
	`CREATE TABLE IF NOT EXISTS shifts (
		id          BIGSERIAL PRIMARY KEY,
		import_id   TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		shift_date  TIMESTAMPTZ NOT NULL,
		shift_type  TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		duration    INTEGER NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS shifts_created_at_idx ON shifts (created_at)`,
}

// EnsureSchema creates the import tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
