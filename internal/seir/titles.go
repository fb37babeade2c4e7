package seir

import (
	"fmt"
	"math"
	"strings"

	"github.com/epiforge/seirsim/internal/models"
)

// DefaultScenarioName is the placeholder label used when a scenario has no name.
const DefaultScenarioName = "scenario"

// A duration inside [360, 370] days is presented as one full seasonal year.
const (
	fullYearMinDays = 360
	fullYearMaxDays = 370
)

// titles derives the two presentation titles for a scenario. With a
// reference year Y the simulation is labeled as starting in Y+1 and
// spanning max(1, ceil(days/365)) approximate years; a clean "seasonal"
// label is used only when the duration reads as one full year.
func titles(params models.ScenarioParameters) (titleSEIR, titleBeta string) {
	days := params.DurationDays
	fullYear := days >= fullYearMinDays && days <= fullYearMaxDays

	if params.Year == 0 {
		if fullYear {
			return "Seasonal SEIR model", "Seasonal transmission rate β(t)"
		}
		return fmt.Sprintf("SEIR model (~%d days)", days),
			fmt.Sprintf("Transmission rate β(t) (~%d days)", days)
	}

	name := params.Name
	if strings.TrimSpace(name) == "" {
		name = DefaultScenarioName
	}

	// The scenario data is from params.Year; the simulated outbreak starts
	// the following year.
	startYear := params.Year + 1
	approxYears := int(math.Ceil(float64(days) / 365.0))
	if approxYears < 1 {
		approxYears = 1
	}
	endYear := startYear + approxYears - 1

	yearRange := fmt.Sprintf("%d", startYear)
	if approxYears > 1 {
		yearRange = fmt.Sprintf("%d-%d", startYear, endYear)
	}

	if fullYear && approxYears == 1 {
		return fmt.Sprintf("Seasonal model %s %s", name, yearRange),
			fmt.Sprintf("Transmission rate β(t) - %s %s", name, yearRange)
	}
	return fmt.Sprintf("SEIR model %s %s (~%d days)", name, yearRange, days),
		fmt.Sprintf("Transmission rate β(t) - %s %s (~%d days)", name, yearRange, days)
}
