// Package store persists experiment runs and per-board results to a
// SQLite database so long sweeps can be inspected after the fact.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nvandessel/snakewalk/internal/walk"
)

// RunStore records experiment runs in dir/runs.db.
type RunStore struct {
	mu     sync.Mutex
	db     *sql.DB
	dbPath string
}

// RunMeta describes a batch when it starts.
type RunMeta struct {
	Mode      string // "boards", "sample", or "sweep"
	CapFactor float64
	CapUsed   bool
	Ceiling   int64 // 0 for boards mode
	Seed      int64 // 0 unless sample mode
}

// RunSummary is one recorded run with its aggregate counts.
type RunSummary struct {
	ID         int64
	Mode       string
	CapFactor  float64
	CapUsed    bool
	Ceiling    int64
	Seed       int64
	StartedAt  time.Time
	FinishedAt *time.Time
	Checked    int64
	Fails      int64
}

// Open creates or opens the run store under dir.
func Open(dir string) (*RunStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dbPath := filepath.Join(dir, "runs.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &RunStore{db: db, dbPath: dbPath}, nil
}

// BeginRun inserts a run row and returns its ID.
func (s *RunStore) BeginRun(ctx context.Context, meta RunMeta) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (mode, cap_factor, cap_used, ceiling, seed, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		meta.Mode, meta.CapFactor, boolInt(meta.CapUsed), meta.Ceiling, meta.Seed,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return res.LastInsertId()
}

// RecordResult appends one board outcome under a run.
func (s *RunStore) RecordResult(ctx context.Context, runID int64, r walk.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (run_id, a, b, cells, steps, ok, cap_used, cap)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.A, r.B, r.Cells, r.Steps, boolInt(r.OK), boolInt(r.CapUsed), r.Cap)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

// FinishRun stamps the run complete with its aggregate counts.
func (s *RunStore) FinishRun(ctx context.Context, runID, checked, fails int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, checked = ?, fails = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), checked, fails, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRuns returns all recorded runs, newest first.
func (s *RunStore) ListRuns(ctx context.Context) ([]RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, cap_factor, cap_used, ceiling, seed, started_at, finished_at, checked, fails
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var capUsed int
		var started string
		var finished sql.NullString
		if err := rows.Scan(&r.ID, &r.Mode, &r.CapFactor, &capUsed, &r.Ceiling, &r.Seed,
			&started, &finished, &r.Checked, &r.Fails); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.CapUsed = capUsed != 0
		if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
			r.StartedAt = t
		}
		if finished.Valid {
			if t, err := time.Parse(time.RFC3339Nano, finished.String); err == nil {
				r.FinishedAt = &t
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FailedResults returns the boards under a run that missed coverage.
func (s *RunStore) FailedResults(ctx context.Context, runID int64) ([]walk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT a, b, cells, steps, ok, cap_used, cap FROM results
		 WHERE run_id = ? AND ok = 0 ORDER BY cells`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var out []walk.Result
	for rows.Next() {
		var r walk.Result
		var ok, capUsed int
		if err := rows.Scan(&r.A, &r.B, &r.Cells, &r.Steps, &ok, &capUsed, &r.Cap); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.OK = ok != 0
		r.CapUsed = capUsed != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
