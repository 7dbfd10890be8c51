// Package history keeps a record of finished solver runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/baldhumanity/tsp-ga/tsp"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	run_id          TEXT NOT NULL,
	instance        TEXT NOT NULL,
	seed            INTEGER NOT NULL,
	population_size INTEGER NOT NULL,
	generations     INTEGER NOT NULL,
	mutation_rate   REAL NOT NULL,
	cost            REAL NOT NULL,
	route           TEXT NOT NULL,
	duration_ms     INTEGER NOT NULL,
	created_at      INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS runs_instance_cost ON runs (instance, cost)`,
	`CREATE INDEX IF NOT EXISTS runs_run_id ON runs (run_id)`,
}

// routeSep joins route labels in the route column.
const routeSep = " -> "

// ErrNotFound is returned when no run matches a query.
var ErrNotFound = errors.New("history: no matching run")

// Run is one recorded solver run. ID identifies the record; RunID is the
// solver run it came from, shared by every result of a run resumed from its
// checkpoints.
type Run struct {
	ID             uuid.UUID
	RunID          uuid.UUID
	Instance       string
	Seed           int64
	PopulationSize int
	Generations    int
	MutationRate   float64
	Cost           float64
	Route          []string
	Duration       time.Duration
	CreatedAt      time.Time
}

// NewRun assembles a Run from the inputs and result of a solve.
func NewRun(inst *tsp.Instance, config *tsp.Config, res tsp.Result) Run {
	return Run{
		RunID:          res.RunID,
		Instance:       inst.Name,
		Seed:           config.Run.Seed,
		PopulationSize: config.GA.PopulationSize,
		Generations:    res.Generations,
		MutationRate:   config.GA.MutationRate,
		Cost:           res.Cost,
		Route:          res.Route,
		Duration:       res.Duration,
		CreatedAt:      time.Now(),
	}
}

// Store is a run history backed by a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dsn, e.g. a file
// path or ":memory:".
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database '%s': %w", dsn, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create history schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a run. A zero ID is replaced with a fresh UUID.
func (s *Store) Record(ctx context.Context, run Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, run_id, instance, seed, population_size, generations, mutation_rate, cost, route, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.RunID.String(), run.Instance, run.Seed, run.PopulationSize, run.Generations,
		run.MutationRate, run.Cost, strings.Join(run.Route, routeSep),
		run.Duration.Milliseconds(), run.CreatedAt.UnixNano(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return run.ID, nil
}

const selectRuns = `SELECT id, run_id, instance, seed, population_size, generations, mutation_rate, cost, route, duration_ms, created_at FROM runs`

// Best returns the cheapest recorded run for an instance. Among equal costs
// the earliest run wins.
func (s *Store) Best(ctx context.Context, instance string) (Run, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE instance = ? ORDER BY cost ASC, created_at ASC LIMIT 1`, instance)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: instance %q", ErrNotFound, instance)
	}
	return run, err
}

// List returns up to limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, selectRuns+` ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run        Run
		id, runID  string
		route      string
		durationMs int64
		createdAt  int64
	)
	err := sc.Scan(&id, &runID, &run.Instance, &run.Seed, &run.PopulationSize, &run.Generations,
		&run.MutationRate, &run.Cost, &route, &durationMs, &createdAt)
	if err != nil {
		return Run{}, err
	}
	if run.ID, err = uuid.Parse(id); err != nil {
		return Run{}, fmt.Errorf("bad record id %q: %w", id, err)
	}
	if run.RunID, err = uuid.Parse(runID); err != nil {
		return Run{}, fmt.Errorf("bad run id %q: %w", runID, err)
	}
	if route != "" {
		run.Route = strings.Split(route, routeSep)
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CreatedAt = time.Unix(0, createdAt)
	return run, nil
}
