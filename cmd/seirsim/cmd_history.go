package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/epiforge/seirsim/internal/logger"
	"github.com/epiforge/seirsim/internal/seir"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs from the history",
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

			runs, err := store.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RUN ID\tWHEN\tSCENARIO\tPEAK\tPEAK DAY\tMONTH\tTOTAL CASES")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%d\t%s\t%.0f\n",
					run.ID,
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					displayName(run.Scenario.Name),
					run.PeakValue,
					run.PeakDay,
					seir.MonthNames[run.PeakMonth],
					run.TotalEstimatedCases,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")

	return cmd
}
