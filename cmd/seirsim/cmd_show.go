package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epiforge/seirsim/internal/logger"
	"github.com/epiforge/seirsim/internal/models"
	"github.com/epiforge/seirsim/internal/scenario"
)

func newShowCmd() *cobra.Command {
	var seriesOut string

	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Re-show a recorded run without recomputing it",
		Long: `Shows the summary of a past run. With no run ID, shows the most recent
run of this process. When the full trace is still cached, the day-by-day
series can be exported again with --series-out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					logger.Error("Failed to close run history: %v", err)
				}
			}()

			if len(args) == 0 {
				trace := store.Latest()
				if trace == nil {
					return fmt.Errorf("no run in this session; pass a run ID from 'seirsim history'")
				}
				printTraceSummary(os.Stdout, trace)
				return exportSeries(trace, seriesOut)
			}

			runID := args[0]
			rec, err := store.GetRun(context.Background(), runID)
			if err != nil {
				return err
			}
			printRunSummary(os.Stdout, rec)

			if trace, ok := store.GetTrace(runID); ok {
				return exportSeries(trace, seriesOut)
			}
			if seriesOut != "" {
				return fmt.Errorf("trace for run %s is no longer cached; re-run the scenario to export its series", runID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seriesOut, "series-out", "", "Write the cached day-by-day series to this CSV file")

	return cmd
}

func exportSeries(trace *models.SimulationTrace, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create series file: %w", err)
	}
	defer f.Close()
	if err := scenario.WriteTrace(f, trace); err != nil {
		return err
	}
	fmt.Printf("  Day-by-day series:       %s\n", path)
	return nil
}
