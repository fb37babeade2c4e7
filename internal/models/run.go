package models

import (
	"errors"
	"math"
	"time"
)

// RunRecord is the persisted summary of one engine invocation: the scenario
// that was run plus the derived scalars of its trace. The full series are
// kept only in the in-process trace cache, not in the record.
type RunRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Scenario ScenarioParameters `json:"scenario"`

	PeakDay             int     `json:"peak_day"`
	PeakValue           float64 `json:"peak_value"`
	PeakMonth           int     `json:"peak_month"`
	FinalRecovered      float64 `json:"final_recovered"`
	FinalInfectious     float64 `json:"final_infectious"`
	TotalEstimatedCases float64 `json:"total_estimated_cases"`

	TitleSEIR string `json:"title_seir"`
	TitleBeta string `json:"title_beta"`
}

// NewRunRecord assembles a RunRecord from a scenario and its computed trace.
func NewRunRecord(id string, createdAt time.Time, params ScenarioParameters, trace *SimulationTrace) *RunRecord {
	return &RunRecord{
		ID:                  id,
		CreatedAt:           createdAt,
		Scenario:            params,
		PeakDay:             trace.PeakDay,
		PeakValue:           trace.PeakValue,
		PeakMonth:           trace.PeakMonth,
		FinalRecovered:      trace.FinalRecovered,
		FinalInfectious:     trace.FinalInfectious,
		TotalEstimatedCases: trace.TotalEstimatedCases,
		TitleSEIR:           trace.TitleSEIR,
		TitleBeta:           trace.TitleBeta,
	}
}

// Validate checks that a run record is internally consistent before storage.
func (r *RunRecord) Validate() error {
	if r.ID == "" {
		return errors.New("run ID must not be empty")
	}
	if r.CreatedAt.IsZero() {
		return errors.New("created at must be set")
	}
	if r.Scenario.Population <= 0 {
		return errors.New("total population must be greater than 0")
	}
	if r.Scenario.DurationDays <= 0 {
		return errors.New("duration days must be greater than 0")
	}
	if r.PeakDay < 0 || r.PeakDay >= r.Scenario.DurationDays {
		return errors.New("peak day must lie within the simulated range")
	}
	if r.PeakMonth < 0 || r.PeakMonth > 11 {
		return errors.New("peak month must be between 0 and 11")
	}
	expected := r.FinalRecovered + r.FinalInfectious
	if math.Abs(r.TotalEstimatedCases-expected) > 1e-6 {
		return errors.New("total estimated cases must equal final recovered + final infectious")
	}
	if r.TitleSEIR == "" || r.TitleBeta == "" {
		return errors.New("titles must not be empty")
	}
	return nil
}
