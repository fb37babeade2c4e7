package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epiforge/seirsim/internal/config"
	"github.com/epiforge/seirsim/internal/logger"
	"github.com/epiforge/seirsim/internal/notify"
	"github.com/epiforge/seirsim/internal/storage"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "seirsim",
		Short: "Seasonal SEIR dengue scenario simulator",
		Long: `seirsim simulates the spread of dengue in a closed population using a
seasonal SEIR compartmental model.

Scenarios can be supplied as flags or imported in batch from a CSV file;
every run is summarized, stored in the run history, and can be re-shown
without recomputation.`,
	}

	rootCmd.PersistentFlags().String("config", "configs/config.yaml", "Path to configuration file")

	rootCmd.AddCommand(
		newRunCmd(),
		newBatchCmd(),
		newTemplateCmd(),
		newHistoryCmd(),
		newShowCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("seirsim version %s\n", version)
		},
	}
}

// loadConfig reads and validates the configuration, then initializes logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

func openStore(cfg *config.Config) (*storage.Store, error) {
	store, err := storage.New(cfg.Storage.DBPath, cfg.Storage.TraceCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history: %w", err)
	}
	return store, nil
}

// newAlerter returns a Telegram client when alerts are enabled, nil otherwise.
func newAlerter(cfg *config.Config) (*notify.Client, error) {
	if !cfg.Alert.Enabled {
		return nil, nil
	}
	client, err := notify.NewClient(cfg.Alert.BotToken, cfg.Alert.ChatID, cfg.Alert.MaxRetries, cfg.Alert.RetryDelayBase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram client: %w", err)
	}
	return client, nil
}
