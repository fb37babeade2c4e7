package models

import (
	"testing"
	"time"
)

func validRunRecord() *RunRecord {
	return &RunRecord{
		ID:        "run-1",
		CreatedAt: time.Now(),
		Scenario: ScenarioParameters{
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
		PeakValue:           4200,
		PeakMonth:           4,
		FinalRecovered:      61000,
		FinalInfectious:     120,
		TotalEstimatedCases: 61120,
		TitleSEIR:           "Seasonal model Brazil 2025",
		TitleBeta:           "Transmission rate β(t) - Brazil 2025",
	}
}

func TestInitialSusceptible(t *testing.T) {
	p := ScenarioParameters{
		Population:        1000,
		InitialInfectious: 10,
		InitialExposed:    5,
		InitialRecovered:  85,
	}
	if got := p.InitialSusceptible(); got != 900 {
		t.Errorf("InitialSusceptible = %.0f, want 900", got)
	}

	p.InitialRecovered = 2000
	if got := p.InitialSusceptible(); got >= 0 {
		t.Errorf("oversubscribed initial state should be negative, got %.0f", got)
	}
}

func TestRunRecordValidate(t *testing.T) {
	if err := validRunRecord().Validate(); err != nil {
		t.Fatalf("valid record failed validation: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RunRecord)
	}{
		{"empty ID", func(r *RunRecord) { r.ID = "" }},
		{"zero created at", func(r *RunRecord) { r.CreatedAt = time.Time{} }},
		{"zero population", func(r *RunRecord) { r.Scenario.Population = 0 }},
		{"zero duration", func(r *RunRecord) { r.Scenario.DurationDays = 0 }},
		{"peak day past duration", func(r *RunRecord) { r.PeakDay = 365 }},
		{"negative peak day", func(r *RunRecord) { r.PeakDay = -1 }},
		{"peak month out of range", func(r *RunRecord) { r.PeakMonth = 12 }},
		{"inconsistent case total", func(r *RunRecord) { r.TotalEstimatedCases = 1 }},
		{"missing title", func(r *RunRecord) { r.TitleSEIR = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRunRecord()
			tt.mutate(r)
			if err := r.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestNewRunRecord(t *testing.T) {
	trace := &SimulationTrace{
		Days:                365,
		PeakDay:             142,
		PeakValue:           4200,
		PeakMonth:           4,
		FinalRecovered:      61000,
		FinalInfectious:     120,
		TotalEstimatedCases: 61120,
		TitleSEIR:           "Seasonal model Brazil 2025",
		TitleBeta:           "Transmission rate β(t) - Brazil 2025",
	}
	params := validRunRecord().Scenario
	createdAt := time.Now()

	rec := NewRunRecord("run-9", createdAt, params, trace)
	if rec.ID != "run-9" || !rec.CreatedAt.Equal(createdAt) {
		t.Errorf("unexpected identity fields: %+v", rec)
	}
	if rec.PeakDay != 142 || rec.TotalEstimatedCases != 61120 {
		t.Errorf("trace summary not carried over: %+v", rec)
	}
	if err := rec.Validate(); err != nil {
		t.Errorf("assembled record should validate, got: %v", err)
	}
}
