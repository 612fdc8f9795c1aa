// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/claude-archive/pkg/types"
)

const manifestFile = "manifest.yaml"

// Manifest is the machine-readable run record written alongside the indexes.
// It carries no clock values, so reruns over identical input reproduce it
// byte for byte.
type Manifest struct {
	Counts   ManifestCounts `yaml:"counts"`
	Files    []string       `yaml:"files"`
	Warnings []string       `yaml:"warnings,omitempty"`
}

// ManifestCounts mirrors the model statistics.
type ManifestCounts struct {
	Conversations int `yaml:"conversations"`
	Projects      int `yaml:"projects"`
	Users         int `yaml:"users"`
	Messages      int `yaml:"messages"`
	Documents     int `yaml:"documents"`
}

// WriteManifest serializes the run manifest to metadata/manifest.yaml under
// root. The file list is sorted so the manifest is deterministic.
func WriteManifest(root string, stats types.Stats, docs []types.RenderedDoc, warnings []string) error {
	files := make([]string, len(docs))
	for i, d := range docs {
		files[i] = d.RelPath
	}
	sort.Strings(files)

	man := Manifest{
		Counts: ManifestCounts{
			Conversations: stats.Conversations,
			Projects:      stats.Projects,
			Users:         stats.Users,
			Messages:      stats.Messages,
			Documents:     stats.Documents,
		},
		Files:    files,
		Warnings: warnings,
	}

	data, err := yaml.Marshal(man)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	dir := filepath.Join(root, "metadata")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating metadata directory: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, manifestFile), data, 0o644)
}
