package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/epiforge/seirsim/internal/config"
	"github.com/epiforge/seirsim/internal/logger"
	"github.com/epiforge/seirsim/internal/models"
	"github.com/epiforge/seirsim/internal/notify"
	"github.com/epiforge/seirsim/internal/seir"
	"github.com/epiforge/seirsim/internal/storage"
)

// executeScenario runs one scenario through the engine, records it in the
// run history, caches the trace, and fires a peak alert when configured.
// Engine validation failures come back unwrapped so the caller can surface
// the exact offending field to the user.
func executeScenario(
	ctx context.Context,
	cfg *config.Config,
	store *storage.Store,
	alerter *notify.Client,
	params models.ScenarioParameters,
) (*models.RunRecord, *models.SimulationTrace, error) {
	if params.DurationDays > cfg.Simulation.MaxRecommendedDays {
		logger.Warn("Duration of %d days exceeds the recommended maximum of %d; the run will proceed but may be slow",
			params.DurationDays, cfg.Simulation.MaxRecommendedDays)
	}

	start := time.Now()
	trace, err := seir.Run(params)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Simulated %d days in %v", trace.Days, time.Since(start))

	rec := models.NewRunRecord(uuid.New().String(), time.Now(), params, trace)

	if err := store.SaveRun(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("failed to record run: %w", err)
	}
	store.CacheTrace(rec.ID, trace)
	logger.Info("Recorded run %s (%s)", rec.ID, rec.TitleSEIR)

	maybeAlert(cfg, alerter, rec)

	return rec, trace, nil
}

// maybeAlert sends a Telegram alert when the infectious peak crosses the
// configured fraction of the population. Alert failures are logged, never fatal.
func maybeAlert(cfg *config.Config, alerter *notify.Client, rec *models.RunRecord) {
	if alerter == nil {
		return
	}
	threshold := cfg.Alert.PeakThreshold * rec.Scenario.Population
	if rec.PeakValue < threshold {
		logger.Debug("Peak %.0f below alert threshold %.0f, no alert sent", rec.PeakValue, threshold)
		return
	}
	if err := alerter.SendPeakAlert(rec); err != nil {
		logger.Warn("Failed to send peak alert: %v", err)
		return
	}
	logger.Info("Sent peak alert for run %s", rec.ID)
}

// printRunSummary writes the human-readable result block for one run.
func printRunSummary(w io.Writer, rec *models.RunRecord) {
	fmt.Fprintf(w, "%s\n", rec.TitleSEIR)
	fmt.Fprintf(w, "  Run ID:                  %s\n", rec.ID)
	fmt.Fprintf(w, "  Peak of sick people:     %.0f on day %d (%s)\n",
		rec.PeakValue, rec.PeakDay, seir.MonthNames[rec.PeakMonth])
	fmt.Fprintf(w, "  Recovered at the end:    %.0f\n", rec.FinalRecovered)
	fmt.Fprintf(w, "  Still sick at the end:   %.0f\n", rec.FinalInfectious)
	fmt.Fprintf(w, "  Estimated total cases:   %.0f\n", rec.TotalEstimatedCases)
}

// printTraceSummary writes the result block for a trace without its run record.
func printTraceSummary(w io.Writer, trace *models.SimulationTrace) {
	fmt.Fprintf(w, "%s\n", trace.TitleSEIR)
	fmt.Fprintf(w, "  Peak of sick people:     %.0f on day %d (%s)\n",
		trace.PeakValue, trace.PeakDay, trace.PeakMonthName)
	fmt.Fprintf(w, "  Recovered at the end:    %.0f\n", trace.FinalRecovered)
	fmt.Fprintf(w, "  Still sick at the end:   %.0f\n", trace.FinalInfectious)
	fmt.Fprintf(w, "  Estimated total cases:   %.0f\n", trace.TotalEstimatedCases)
}
