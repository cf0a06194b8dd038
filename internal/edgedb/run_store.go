package edgedb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("run not found")

// Run is one persisted processing run: a single frame streamed through the
// core, with summary statistics over the interior responses.
type Run struct {
	RunID           string  `json:"run_id"`
	Source          string  `json:"source"` // input file path or synthetic stimulus name
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	ScaleShift      int     `json:"scale_shift"`
	BlankingCycles  int     `json:"blanking_cycles"`
	MeanMagnitude   float64 `json:"mean_magnitude"`
	StdDevMagnitude float64 `json:"stddev_magnitude"`
	MaxMagnitude    int     `json:"max_magnitude"`
	CreatedAt       int64   `json:"created_at"`
}

// RunStore provides persistence for processing runs.
type RunStore struct {
	db *sql.DB
}

// NewRunStore creates a RunStore over an open runs database.
func NewRunStore(db *DB) *RunStore {
	return &RunStore{db: db.DB}
}

// Insert persists a run. If RunID is empty, a UUID is generated; if
// CreatedAt is zero, the current time is used.
func (s *RunStore) Insert(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}

	err := retryOnBusy(func() error {
		_, err := s.db.Exec(`
			INSERT INTO runs (
				run_id, source, width, height, scale_shift, blanking_cycles,
				mean_magnitude, stddev_magnitude, max_magnitude, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.RunID,
			run.Source,
			run.Width,
			run.Height,
			run.ScaleShift,
			run.BlankingCycles,
			run.MeanMagnitude,
			run.StdDevMagnitude,
			run.MaxMagnitude,
			run.CreatedAt,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", run.RunID, err)
	}
	return nil
}

// Get returns a run by ID, or ErrRunNotFound.
func (s *RunStore) Get(runID string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT run_id, source, width, height, scale_shift, blanking_cycles,
		       mean_magnitude, stddev_magnitude, max_magnitude, created_at
		FROM runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching run %s: %w", runID, err)
	}
	return run, nil
}

// List returns the most recent runs, newest first, up to limit.
func (s *RunStore) List(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT run_id, source, width, height, scale_shift, blanking_cycles,
		       mean_magnitude, stddev_magnitude, max_magnitude, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Delete removes a run record. Deleting an unknown ID is not an error.
func (s *RunStore) Delete(runID string) error {
	err := retryOnBusy(func() error {
		_, err := s.db.Exec(`DELETE FROM runs WHERE run_id = ?`, runID)
		return err
	})
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", runID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	err := row.Scan(
		&run.RunID,
		&run.Source,
		&run.Width,
		&run.Height,
		&run.ScaleShift,
		&run.BlankingCycles,
		&run.MeanMagnitude,
		&run.StdDevMagnitude,
		&run.MaxMagnitude,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
