package models

// SimulationTrace is the full result of one engine run. All five series have
// length Days and are indexed by day number (day 0 holds the initial state).
// A trace is fully populated before it is returned and never mutated after;
// traces from repeated runs share no state.
type SimulationTrace struct {
	Susceptible []float64 `json:"susceptible"`
	Exposed     []float64 `json:"exposed"`
	Infectious  []float64 `json:"infectious"`
	Recovered   []float64 `json:"recovered"`
	Beta        []float64 `json:"beta_t"` // realized transmission coefficient per day

	Days int `json:"days"`

	// Peak of the infectious compartment. PeakDay is the first day attaining
	// the maximum; PeakMonth is 0–11 under the fixed 30-day-month mapping.
	PeakDay       int     `json:"peak_day"`
	PeakValue     float64 `json:"peak_value"`
	PeakMonth     int     `json:"peak_month"`
	PeakMonthName string  `json:"peak_month_name"`

	FinalRecovered      float64 `json:"final_recovered"`
	FinalInfectious     float64 `json:"final_infectious"`
	TotalEstimatedCases float64 `json:"total_estimated_cases"`

	// Presentation titles. Their year/duration reasoning depends on the
	// simulation semantics, so the engine derives them with the trace.
	TitleSEIR string `json:"title_seir"`
	TitleBeta string `json:"title_beta"`
}
