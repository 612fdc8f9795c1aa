// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/claude-archive/internal/export"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [files...]",
	Short: "Load export files and print counts without writing anything",
	Long: `Summary runs classification, loading, and normalization exactly like
export, then prints the aggregate counts and stops. Nothing is written to
disk. Useful for checking an export before committing to a full run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	res, err := export.Load(args, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Println(statsTable(res.Model.Stats))
	if res.Model.Stats.FirstDate != "" {
		fmt.Printf("\nDate range: %s to %s\n", res.Model.Stats.FirstDate, res.Model.Stats.LastDate)
	}

	reportWarnings(res.Warnings)
	return nil
}
