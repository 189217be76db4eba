package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema defines the run store tables. A run row is one driver batch
// (boards, sample, or sweep); result rows are the per-board outcomes
// recorded under it.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	mode        TEXT    NOT NULL,
	cap_factor  REAL    NOT NULL,
	cap_used    INTEGER NOT NULL,
	ceiling     INTEGER NOT NULL DEFAULT 0,
	seed        INTEGER NOT NULL DEFAULT 0,
	started_at  TEXT    NOT NULL,
	finished_at TEXT,
	checked     INTEGER NOT NULL DEFAULT 0,
	fails       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS results (
	run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	a        INTEGER NOT NULL,
	b        INTEGER NOT NULL,
	cells    INTEGER NOT NULL,
	steps    INTEGER NOT NULL,
	ok       INTEGER NOT NULL,
	cap_used INTEGER NOT NULL,
	cap      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
CREATE INDEX IF NOT EXISTS idx_results_run_ok ON results(run_id, ok);
`

// InitSchema creates the run store tables if they do not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
