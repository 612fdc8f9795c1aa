// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExportConfig holds settings for the export pipeline.
type ExportConfig struct {
	// OutputDir is the archive root directory (default "claude_complete_export").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// RecentLimit is the number of recent conversations listed on the root
	// summary (default 10).
	RecentLimit int `json:"recent_limit" yaml:"recent_limit"`

	// SearchIndex enables building a SQLite full-text index over the
	// archive at metadata/search.db.
	SearchIndex bool `json:"search_index" yaml:"search_index"`
}

// Defaults fills zero-valued fields with their documented defaults.
func (c ExportConfig) Defaults() ExportConfig {
	if c.OutputDir == "" {
		c.OutputDir = "claude_complete_export"
	}
	if c.RecentLimit <= 0 {
		c.RecentLimit = 10
	}
	return c
}
