package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epiforge/seirsim/internal/scenario"
)

func newTemplateCmd() *cobra.Command {
	var out string
	var instructions string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a blank scenario CSV template",
		Long: `Writes an empty scenario CSV with the expected columns, plus a text
file describing what every column means.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scenario.WriteTemplateFile(out); err != nil {
				return err
			}
			fmt.Printf("Template written to %s\n", out)

			if instructions != "" {
				f, err := os.Create(instructions)
				if err != nil {
					return fmt.Errorf("failed to create instructions file: %w", err)
				}
				defer f.Close()
				if err := scenario.WriteInstructions(f); err != nil {
					return err
				}
				fmt.Printf("Instructions written to %s\n", instructions)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "scenarios.csv", "Template file to write")
	cmd.Flags().StringVar(&instructions, "instructions", "scenarios-instructions.txt", "Instructions file to write (empty to skip)")

	return cmd
}
