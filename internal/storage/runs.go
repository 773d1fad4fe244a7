package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// timeLayout is fixed-width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run kinds.
const (
	KindBuild  = "build"
	KindSolve  = "solve"
	KindTest   = "test"
	KindVerify = "verify"
)

// Run is one recorded CLI execution.
type Run struct {
	RunID     string
	Kind      string
	Algorithm string
	Heuristic string
	StartedAt time.Time
	Duration  time.Duration
	Passed    bool
	Notes     string
}

// RunRepository stores runs and their per-case results.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create inserts run and returns its generated ID. A zero StartedAt is
// replaced with the current time.
func (r *RunRepository) Create(run Run) (string, error) {
	id := uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, kind, algorithm, heuristic, started_at, duration_ms, passed, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, run.Kind, nullable(run.Algorithm), nullable(run.Heuristic),
		run.StartedAt.UTC().Format(timeLayout), run.Duration.Milliseconds(),
		run.Passed, nullable(run.Notes))
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// AddResults stores per-case results for a run in one transaction.
func (r *RunRepository) AddResults(runID string, results []harness.CaseResult) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO results (run_id, case_index, scramble, passed, elapsed_us, expanded, path_length, path)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare result insert: %w", err)
		}
		defer stmt.Close()

		for _, res := range results {
			_, err := stmt.Exec(runID, res.Index, res.Scramble, res.Passed,
				res.Elapsed.Microseconds(), res.Expanded, res.PathLength,
				types.FormatMoves(res.Path))
			if err != nil {
				return fmt.Errorf("failed to insert result %d: %w", res.Index, err)
			}
		}
		return nil
	})
}

// Results returns the per-case results of a run ordered by case index.
func (r *RunRepository) Results(runID string) ([]harness.CaseResult, error) {
	rows, err := r.db.Query(`
		SELECT case_index, scramble, passed, elapsed_us, expanded, path_length, path
		FROM results
		WHERE run_id = ?
		ORDER BY case_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	defer rows.Close()

	var results []harness.CaseResult
	for rows.Next() {
		var res harness.CaseResult
		var elapsedUs int64
		var path string
		if err := rows.Scan(&res.Index, &res.Scramble, &res.Passed, &elapsedUs,
			&res.Expanded, &res.PathLength, &path); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		res.Elapsed = time.Duration(elapsedUs) * time.Microsecond
		if res.Path, err = types.ParseMoves(path); err != nil {
			return nil, fmt.Errorf("failed to parse stored path: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

const runColumns = `run_id, kind, algorithm, heuristic, started_at, duration_ms, passed, notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var algorithm, heuristic, notes sql.NullString
	var startedAt string
	var durationMs int64

	if err := s.Scan(&run.RunID, &run.Kind, &algorithm, &heuristic,
		&startedAt, &durationMs, &run.Passed, &notes); err != nil {
		return nil, err
	}

	t, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}
	run.StartedAt = t
	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.Algorithm = algorithm.String
	run.Heuristic = heuristic.String
	run.Notes = notes.String
	return &run, nil
}

// Get retrieves a run by ID. It returns nil when no such run exists.
func (r *RunRepository) Get(runID string) (*Run, error) {
	run, err := scanRun(r.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// Last returns the most recent run, or nil when none has been recorded.
func (r *RunRepository) Last() (*Run, error) {
	run, err := scanRun(r.db.QueryRow(`SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, rowid DESC LIMIT 1`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last run: %w", err)
	}
	return run, nil
}

// List returns up to limit runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Delete removes a run and its results.
func (r *RunRepository) Delete(runID string) error {
	if _, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
