// Package storage persists run history and caches computed traces.
//
// Run summaries (scenario parameters plus derived peak statistics) are kept
// in a SQLite database so past runs can be listed and re-inspected across
// restarts. Full traces are deliberately not persisted: the series can be
// recomputed bit-identically from the stored parameters, so only an
// in-process LRU cache holds them, together with the single most recent
// trace for redraw-without-recompute. The engine itself stays stateless;
// all caller-side state lives here.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/epiforge/seirsim/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id                     TEXT PRIMARY KEY,
	created_at             TIMESTAMP NOT NULL,
	scenario_name          TEXT NOT NULL,
	scenario_year          INTEGER NOT NULL,
	total_population       REAL NOT NULL,
	initial_infectious     REAL NOT NULL,
	initial_exposed        REAL NOT NULL,
	initial_recovered      REAL NOT NULL,
	base_transmission_rate REAL NOT NULL,
	incubation_days        REAL NOT NULL,
	infectious_days        REAL NOT NULL,
	duration_days          INTEGER NOT NULL,
	seasonal_forcing       REAL NOT NULL,
	peak_day               INTEGER NOT NULL,
	peak_value             REAL NOT NULL,
	peak_month             INTEGER NOT NULL,
	final_recovered        REAL NOT NULL,
	final_infectious       REAL NOT NULL,
	total_estimated_cases  REAL NOT NULL,
	title_seir             TEXT NOT NULL,
	title_beta             TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Store is the run-history database plus the in-process trace cache.
type Store struct {
	db     *sql.DB
	traces *lru.Cache[string, *models.SimulationTrace]

	mu     sync.RWMutex
	latest *models.SimulationTrace
}

// New opens (creating if needed) the run database at dbPath and sets up a
// trace cache holding up to traceCacheSize traces. ":memory:" is accepted
// for tests.
func New(dbPath string, traceCacheSize int) (*Store, error) {
	if dbPath == "" {
		dbPath = filepath.Join(os.TempDir(), "seirsim", "runs.db")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if traceCacheSize < 1 {
		traceCacheSize = 1
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	traces, err := lru.New[string, *models.SimulationTrace](traceCacheSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create trace cache: %w", err)
	}

	return &Store{db: db, traces: traces}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun validates and persists a run summary.
func (s *Store) SaveRun(ctx context.Context, run *models.RunRecord) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("invalid run record: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, created_at, scenario_name, scenario_year, total_population,
			initial_infectious, initial_exposed, initial_recovered,
			base_transmission_rate, incubation_days, infectious_days,
			duration_days, seasonal_forcing, peak_day, peak_value, peak_month,
			final_recovered, final_infectious, total_estimated_cases,
			title_seir, title_beta
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC(), run.Scenario.Name, run.Scenario.Year,
		run.Scenario.Population, run.Scenario.InitialInfectious,
		run.Scenario.InitialExposed, run.Scenario.InitialRecovered,
		run.Scenario.BaseTransmissionRate, run.Scenario.IncubationDays,
		run.Scenario.InfectiousDays, run.Scenario.DurationDays,
		run.Scenario.SeasonalForcing, run.PeakDay, run.PeakValue, run.PeakMonth,
		run.FinalRecovered, run.FinalInfectious, run.TotalEstimatedCases,
		run.TitleSEIR, run.TitleBeta,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// GetRun retrieves one run summary by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*models.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read run: %w", err)
	}
	return run, nil
}

// ListRuns returns up to limit run summaries, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*models.RunRecord, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, selectRuns+` ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

const selectRuns = `
	SELECT id, created_at, scenario_name, scenario_year, total_population,
		initial_infectious, initial_exposed, initial_recovered,
		base_transmission_rate, incubation_days, infectious_days,
		duration_days, seasonal_forcing, peak_day, peak_value, peak_month,
		final_recovered, final_infectious, total_estimated_cases,
		title_seir, title_beta
	FROM runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.RunRecord, error) {
	var run models.RunRecord
	var createdAt time.Time
	err := row.Scan(
		&run.ID, &createdAt, &run.Scenario.Name, &run.Scenario.Year,
		&run.Scenario.Population, &run.Scenario.InitialInfectious,
		&run.Scenario.InitialExposed, &run.Scenario.InitialRecovered,
		&run.Scenario.BaseTransmissionRate, &run.Scenario.IncubationDays,
		&run.Scenario.InfectiousDays, &run.Scenario.DurationDays,
		&run.Scenario.SeasonalForcing, &run.PeakDay, &run.PeakValue,
		&run.PeakMonth, &run.FinalRecovered, &run.FinalInfectious,
		&run.TotalEstimatedCases, &run.TitleSEIR, &run.TitleBeta,
	)
	if err != nil {
		return nil, err
	}
	run.CreatedAt = createdAt
	return &run, nil
}

// CacheTrace stores a computed trace under its run ID and marks it as the
// latest. Traces are immutable once produced, so no copy is taken.
func (s *Store) CacheTrace(runID string, trace *models.SimulationTrace) {
	s.traces.Add(runID, trace)

	s.mu.Lock()
	s.latest = trace
	s.mu.Unlock()
}

// GetTrace retrieves a cached trace by run ID, if still resident.
func (s *Store) GetTrace(runID string) (*models.SimulationTrace, bool) {
	return s.traces.Get(runID)
}

// Latest returns the most recently cached trace, or nil when no run has
// completed in this process. It serves redraw-style consumers without
// recomputation.
func (s *Store) Latest() *models.SimulationTrace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
