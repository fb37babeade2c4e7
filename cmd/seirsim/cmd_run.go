package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/epiforge/seirsim/internal/logger"
	"github.com/epiforge/seirsim/internal/models"
)

func newRunCmd() *cobra.Command {
	var params models.ScenarioParameters
	var seriesOut string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a single scenario from flags",
		Long: `Runs one seasonal SEIR simulation with the scenario given as flags,
prints the summary, and records the run in the history.`,
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

			alerter, err := newAlerter(cfg)
			if err != nil {
				return err
			}

			rec, trace, err := executeScenario(context.Background(), cfg, store, alerter, params)
			if err != nil {
				return err
			}

			printRunSummary(os.Stdout, rec)

			return exportSeries(trace, seriesOut)
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "Place or scenario label (e.g. Brazil)")
	cmd.Flags().IntVar(&params.Year, "year", 0, "Reference year of the scenario data (0 = none)")
	cmd.Flags().Float64Var(&params.Population, "population", 0, "Total population")
	cmd.Flags().Float64Var(&params.InitialInfectious, "infectious", 1, "People sick on day 0")
	cmd.Flags().Float64Var(&params.InitialExposed, "exposed", 0, "People incubating on day 0")
	cmd.Flags().Float64Var(&params.InitialRecovered, "recovered", 0, "People already immune on day 0")
	cmd.Flags().Float64Var(&params.BaseTransmissionRate, "beta0", 0.3, "Base transmission rate per day")
	cmd.Flags().Float64Var(&params.IncubationDays, "incubation-days", 5, "Average incubation period in days")
	cmd.Flags().Float64Var(&params.InfectiousDays, "infectious-days", 7, "Average contagious period in days")
	cmd.Flags().IntVar(&params.DurationDays, "days", 0, "Days to simulate")
	cmd.Flags().Float64Var(&params.SeasonalForcing, "forcing", 0.3, "Seasonal forcing amplitude (0 to 1)")
	cmd.Flags().StringVar(&seriesOut, "series-out", "", "Write the day-by-day series to this CSV file")

	_ = cmd.MarkFlagRequired("population")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}
