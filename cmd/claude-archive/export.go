// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/claude-archive/internal/export"
	"github.com/pdiddy/claude-archive/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Build the Markdown archive from export JSON files",
	Long: `Export classifies each input file by filename, loads the JSON
collections it recognizes, and writes the archive directory: a root README,
per-conversation transcripts, per-project pages with their documents, and
metadata indexes.

Files may be given in any order. Unreadable or unrecognized files are skipped
with a warning; the run fails only when no conversations file loads.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output directory (default \"claude_complete_export\")")
	exportCmd.Flags().Int("recent", 0, "number of recent conversations on the root summary (default 10)")
	exportCmd.Flags().Bool("search-index", false, "also build a SQLite full-text index at metadata/search.db")

	rootCmd.AddCommand(exportCmd)
}

func exportConfig(cmd *cobra.Command) types.ExportConfig {
	cfg := types.ExportConfig{
		OutputDir:   viper.GetString("output_dir"),
		RecentLimit: viper.GetInt("recent_limit"),
		SearchIndex: viper.GetBool("search_index"),
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetInt("recent"); v > 0 {
		cfg.RecentLimit = v
	}
	if v, _ := cmd.Flags().GetBool("search-index"); v {
		cfg.SearchIndex = true
	}
	return cfg.Defaults()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig(cmd)

	loaded, err := export.Load(args, os.Stderr)
	if err != nil {
		return err
	}
	fmt.Println(statsTable(loaded.Model.Stats))

	res := export.Publish(context.Background(), loaded, cfg, os.Stderr)

	fmt.Printf("\nExport complete: %d documents written to %s\n", res.Written, cfg.OutputDir)
	fmt.Printf("Start by opening: %s/README.md\n", cfg.OutputDir)

	reportWarnings(res.Warnings)
	return nil
}

// reportWarnings prints the aggregated recoverable conditions at the end of
// the run. Warnings never change the exit code.
func reportWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\n%d warning(s):\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "  - %s\n", w)
	}
}
