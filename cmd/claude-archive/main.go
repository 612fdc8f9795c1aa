// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the claude-archive CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the claude-archive CLI.
var rootCmd = &cobra.Command{
	Use:   "claude-archive",
	Short: "Convert a Claude account export into a browsable Markdown archive",
	Long: `claude-archive converts the JSON files from a Claude account export
(conversations, projects, users) into a cross-linked Markdown directory tree:
one transcript per conversation, one page per project and project document,
plus index pages and a root summary.

Input files are identified by filename: a name containing "conversation",
"project", or "user" maps to the matching collection. Files matching none are
skipped with a warning. A conversations file is required; projects and users
are optional.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./claude-archive.yaml or ~/.config/claude-archive/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("claude-archive")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "claude-archive"))
		}
	}

	viper.SetEnvPrefix("CLAUDE_ARCHIVE")
	viper.AutomaticEnv()

	viper.SetDefault("output_dir", "claude_complete_export")
	viper.SetDefault("recent_limit", 10)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
