// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/claude-archive/internal/searchindex"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search a previously built archive index",
	Long: `Search queries the SQLite index written by "export --search-index"
and prints matching messages with their conversation and position.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("archive", "a", "", "archive root directory (default \"claude_complete_export\")")
	searchCmd.Flags().Int("limit", 20, "maximum number of matches")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("archive")
	if root == "" {
		root = viper.GetString("output_dir")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	hits, err := searchindex.SearchMessages(context.Background(), root, args[0], limit)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, h := range hits {
		fmt.Printf("%s (message %d, %s)\n", h.ConversationName, h.Position+1, h.Sender)
		fmt.Printf("  %s\n\n", excerpt(h.Content, 120))
	}
	fmt.Printf("%d match(es)\n", len(hits))
	return nil
}

func excerpt(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
