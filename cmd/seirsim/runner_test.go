package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/epiforge/seirsim/internal/config"
	"github.com/epiforge/seirsim/internal/models"
	"github.com/epiforge/seirsim/internal/seir"
)

func TestPrintRunSummary(t *testing.T) {
	rec := &models.RunRecord{
		ID:        "run-1",
		CreatedAt: time.Now(),
		Scenario: models.ScenarioParameters{
			Name:       "Brazil",
			Population: 100000,
		},
		PeakDay:             142,
		PeakValue:           4200,
		PeakMonth:           4,
		FinalRecovered:      61000,
		FinalInfectious:     120,
		TotalEstimatedCases: 61120,
		TitleSEIR:           "Seasonal model Brazil 2025",
	}

	var buf bytes.Buffer
	printRunSummary(&buf, rec)

	out := buf.String()
	for _, want := range []string{
		"Seasonal model Brazil 2025",
		"run-1",
		"4200 on day 142 (May)",
		"61120",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTraceSummary(t *testing.T) {
	trace := &models.SimulationTrace{
		Days:                365,
		PeakDay:             10,
		PeakValue:           50,
		PeakMonth:           0,
		PeakMonthName:       "January",
		FinalRecovered:      900,
		FinalInfectious:     1,
		TotalEstimatedCases: 901,
		TitleSEIR:           "Seasonal SEIR model",
	}

	var buf bytes.Buffer
	printTraceSummary(&buf, trace)

	if !strings.Contains(buf.String(), "50 on day 10 (January)") {
		t.Errorf("unexpected trace summary:\n%s", buf.String())
	}
}

func TestMaybeAlertWithoutClient(t *testing.T) {
	cfg := &config.Config{}
	rec := &models.RunRecord{PeakValue: 1e9}
	// A nil alerter (alerts disabled) must be a no-op, not a panic.
	maybeAlert(cfg, nil, rec)
}

func TestDisplayName(t *testing.T) {
	if got := displayName(""); got != seir.DefaultScenarioName {
		t.Errorf("displayName(\"\") = %q", got)
	}
	if got := displayName("  "); got != seir.DefaultScenarioName {
		t.Errorf("displayName(\"  \") = %q", got)
	}
	if got := displayName("Brazil"); got != "Brazil" {
		t.Errorf("displayName(\"Brazil\") = %q", got)
	}
}
