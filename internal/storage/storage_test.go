package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/epiforge/seirsim/internal/models"
)

func mustStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:", 4)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRun(id string, createdAt time.Time) *models.RunRecord {
	return &models.RunRecord{
		ID:        id,
		CreatedAt: createdAt,
		Scenario: models.ScenarioParameters{
			Name:                 "Brazil",
			Year:                 2024,
			Population:           100000,
			InitialInfectious:    10,
			BaseTransmissionRate: 0.3,
			IncubationDays:       5,
			InfectiousDays:       7,
			DurationDays:         365,
			SeasonalForcing:      0.3,
		},
		PeakDay:             142,
		PeakValue:           4200.5,
		PeakMonth:           4,
		FinalRecovered:      61000,
		FinalInfectious:     120,
		TotalEstimatedCases: 61120,
		TitleSEIR:           "Seasonal model Brazil 2025",
		TitleBeta:           "Transmission rate β(t) - Brazil 2025",
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := mustStore(t)
	ctx := context.Background()

	run := sampleRun("run-1", time.Now())
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	got, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Scenario.Name != "Brazil" || got.Scenario.Year != 2024 {
		t.Errorf("unexpected scenario: %+v", got.Scenario)
	}
	if got.PeakDay != 142 || got.PeakValue != 4200.5 || got.PeakMonth != 4 {
		t.Errorf("unexpected peak stats: day=%d value=%.1f month=%d", got.PeakDay, got.PeakValue, got.PeakMonth)
	}
	if got.TitleSEIR != "Seasonal model Brazil 2025" {
		t.Errorf("unexpected title: %q", got.TitleSEIR)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := mustStore(t)

	_, err := s.GetRun(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error for a missing run")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name the run ID, got: %v", err)
	}
}

func TestSaveRunRejectsInvalid(t *testing.T) {
	s := mustStore(t)

	run := sampleRun("", time.Now()) // empty ID
	if err := s.SaveRun(context.Background(), run); err == nil {
		t.Error("expected SaveRun to reject an invalid record")
	}
}

func TestListRunsMostRecentFirst(t *testing.T) {
	s := mustStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		run := sampleRun(id, base.Add(time.Duration(i)*time.Minute))
		if err := s.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun %s failed: %v", id, err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-c" || runs[1].ID != "run-b" {
		t.Errorf("expected most recent first, got %s then %s", runs[0].ID, runs[1].ID)
	}
}

func TestTraceCache(t *testing.T) {
	s := mustStore(t)

	trace := &models.SimulationTrace{Days: 10, PeakDay: 3, PeakValue: 42}
	s.CacheTrace("run-1", trace)

	got, ok := s.GetTrace("run-1")
	if !ok || got != trace {
		t.Fatal("expected the cached trace back")
	}
	if s.Latest() != trace {
		t.Error("expected the cached trace to be the latest")
	}

	second := &models.SimulationTrace{Days: 20, PeakDay: 7, PeakValue: 99}
	s.CacheTrace("run-2", second)
	if s.Latest() != second {
		t.Error("latest should follow the most recent CacheTrace")
	}
	if _, ok := s.GetTrace("run-1"); !ok {
		t.Error("earlier trace should still be resident in the cache")
	}
}

func TestTraceCacheEviction(t *testing.T) {
	s := mustStore(t) // cache size 4

	ids := []string{"r1", "r2", "r3", "r4", "r5"}
	for _, id := range ids {
		s.CacheTrace(id, &models.SimulationTrace{Days: 1})
	}

	if _, ok := s.GetTrace("r1"); ok {
		t.Error("oldest trace should have been evicted")
	}
	if _, ok := s.GetTrace("r5"); !ok {
		t.Error("newest trace should be resident")
	}
}
