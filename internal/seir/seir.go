// Package seir implements the seasonal SEIR simulation engine for dengue
// scenarios. The engine integrates the four-compartment ordinary differential
// equations with fixed-step forward Euler (step = 1 day):
//
//	dS = -β(t)·S·I/N
//	dE =  β(t)·S·I/N - σ·E
//	dI =  σ·E - γ·I
//	dR =  γ·I
//
// where σ = 1/incubation days, γ = 1/infectious days, and β(t) is the
// seasonally forced transmission rate β0·(1 + f·sin(2π·t/365)).
//
// Euler stepping conserves the population only approximately and compartments
// are never clamped to non-negative values; both are properties of the
// reference integrator and are kept as-is. The engine holds no state between
// runs and is safe to call concurrently.
package seir

import (
	"math"

	"github.com/epiforge/seirsim/internal/models"
)

// DaysPerMonth is the fixed month length used to map a day index to a
// calendar month on reports. Downstream consumers rely on this exact
// 30-day quantization; it is not a calendar-accurate month length.
const DaysPerMonth = 30

// MonthNames maps a 0-based month index to its display name.
var MonthNames = [12]string{
	"January", "February", "March", "April",
	"May", "June", "July", "August",
	"September", "October", "November", "December",
}

// SeasonalBeta returns the instantaneous transmission rate on day t:
// β0·(1 + forcing·sin(2π·t/365)). Pure and periodic with period 365.
// Forcing outside [0,1] is accepted and simply yields rates below zero
// or above 2·β0.
func SeasonalBeta(t, beta0, forcing float64) float64 {
	return beta0 * (1.0 + forcing*math.Sin(2.0*math.Pi*t/365.0))
}

// Run validates params, integrates the SEIR equations over DurationDays
// daily steps, and derives the peak statistics and presentation titles.
// On validation failure it returns one of the sentinel errors from this
// package and no trace; an unexpected arithmetic fault surfaces as a
// *SimulationError instead of a panic. A returned trace is always complete.
func Run(params models.ScenarioParameters) (trace *models.SimulationTrace, err error) {
	defer func() {
		if r := recover(); r != nil {
			trace = nil
			err = &SimulationError{Cause: recoveredError(r)}
		}
	}()

	// Validation order matters: the first failing check wins, so callers
	// can surface exactly the offending field.
	if params.Population <= 0 {
		return nil, ErrInvalidPopulation
	}
	if params.DurationDays <= 0 {
		return nil, ErrInvalidDuration
	}
	if params.IncubationDays <= 0 || params.InfectiousDays <= 0 {
		return nil, ErrInvalidDiseaseTiming
	}
	s0 := params.InitialSusceptible()
	if s0 < 0 {
		return nil, ErrInconsistentInitialState
	}

	sigma := 1.0 / params.IncubationDays
	gamma := 1.0 / params.InfectiousDays

	n := params.Population
	days := params.DurationDays
	beta0 := params.BaseTransmissionRate
	forcing := params.SeasonalForcing

	s := make([]float64, days)
	e := make([]float64, days)
	i := make([]float64, days)
	r := make([]float64, days)
	betaT := make([]float64, days)

	s[0] = s0
	e[0] = params.InitialExposed
	i[0] = params.InitialInfectious
	r[0] = params.InitialRecovered
	betaT[0] = SeasonalBeta(0, beta0, forcing)

	for day := 1; day < days; day++ {
		beta := SeasonalBeta(float64(day), beta0, forcing)
		betaT[day] = beta

		newInfections := beta * s[day-1] * i[day-1] / n
		dS := -newInfections
		dE := newInfections - sigma*e[day-1]
		dI := sigma*e[day-1] - gamma*i[day-1]
		dR := gamma * i[day-1]

		s[day] = s[day-1] + dS
		e[day] = e[day-1] + dE
		i[day] = i[day-1] + dI
		r[day] = r[day-1] + dR
	}

	peakDay, peakValue := peak(i)
	peakMonth := (peakDay / DaysPerMonth) % 12

	finalRecovered := r[days-1]
	finalInfectious := i[days-1]

	titleSEIR, titleBeta := titles(params)

	return &models.SimulationTrace{
		Susceptible:         s,
		Exposed:             e,
		Infectious:          i,
		Recovered:           r,
		Beta:                betaT,
		Days:                days,
		PeakDay:             peakDay,
		PeakValue:           peakValue,
		PeakMonth:           peakMonth,
		PeakMonthName:       MonthNames[peakMonth],
		FinalRecovered:      finalRecovered,
		FinalInfectious:     finalInfectious,
		TotalEstimatedCases: finalRecovered + finalInfectious,
		TitleSEIR:           titleSEIR,
		TitleBeta:           titleBeta,
	}, nil
}

// peak returns the first day index attaining the maximum of the infectious
// series and the value there. An identically-zero series yields (0, 0),
// which marks day 0 as the (degenerate) peak.
func peak(infectious []float64) (int, float64) {
	peakDay := 0
	peakValue := infectious[0]
	for day, v := range infectious {
		if v > peakValue {
			peakDay = day
			peakValue = v
		}
	}
	return peakDay, peakValue
}
