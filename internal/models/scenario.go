// Package models defines the core domain entities for the seirsim application.
// These models represent scenario parameters, simulation traces, and persisted
// run records. Validation lives with the component that owns the rule: the
// engine (internal/seir) enforces the epidemiological constraints, while
// RunRecord carries built-in validation for storage integrity.
package models

// ScenarioParameters describes one dengue outbreak scenario to simulate.
// All numeric fields arrive already parsed; text parsing and its errors are
// owned by the collaborator that built the record (CLI flags, CSV importer).
//
// Year is the calendar year the scenario data is drawn from; the simulation
// is understood to start the year after it. Zero means no reference year.
// Name is a free-form place or scenario label; empty means unnamed.
type ScenarioParameters struct {
	Name                 string  `json:"name,omitempty"`
	Year                 int     `json:"year,omitempty"`
	Population           float64 `json:"total_population"`
	InitialInfectious    float64 `json:"initial_infectious"`
	InitialExposed       float64 `json:"initial_exposed"`
	InitialRecovered     float64 `json:"initial_recovered"`
	BaseTransmissionRate float64 `json:"base_transmission_rate"` // β0, per day
	IncubationDays       float64 `json:"incubation_days"`
	InfectiousDays       float64 `json:"infectious_days"`
	DurationDays         int     `json:"duration_days"`
	SeasonalForcing      float64 `json:"seasonal_forcing"` // amplitude, nominally 0–1
}

// InitialSusceptible returns the derived day-0 susceptible count.
// Negative means the initial compartments oversubscribe the population.
func (p ScenarioParameters) InitialSusceptible() float64 {
	return p.Population - p.InitialInfectious - p.InitialExposed - p.InitialRecovered
}
