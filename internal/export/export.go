// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export orchestrates the pipeline: classify input files, load and
// normalize them into the canonical model, render the Markdown document set,
// and write the archive. Recoverable problems accumulate as warnings; the
// only fatal condition is an export with no loadable conversations file,
// which aborts before any output is created.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/claude-archive/internal/archive"
	"github.com/pdiddy/claude-archive/internal/classify"
	"github.com/pdiddy/claude-archive/internal/load"
	"github.com/pdiddy/claude-archive/internal/normalize"
	"github.com/pdiddy/claude-archive/internal/render"
	"github.com/pdiddy/claude-archive/internal/searchindex"
	"github.com/pdiddy/claude-archive/pkg/types"
)

// ErrNoConversations is returned when no conversations file loads
// successfully. Conversations are the only mandatory input role.
var ErrNoConversations = errors.New(
	"no conversations file found: at least one input filename must contain 'conversation' and parse as JSON")

// LoadResult holds the canonical model plus the warnings gathered while
// building it.
type LoadResult struct {
	Model    *types.ExportModel
	Warnings []string
}

// Load classifies every input path, loads each readable file, and
// normalizes the accumulated records into the canonical model. Multiple
// files of the same role accumulate; records are appended in input order.
// Per-file status lines go to w.
func Load(paths []string, w io.Writer) (*LoadResult, error) {
	var (
		conversations, projects, users []load.Record
		warnings                       []string
		conversationsLoaded            bool
	)

	for _, in := range classify.Paths(paths) {
		if in.Role == types.RoleUnknown {
			fmt.Fprintf(w, "skipped: %s (filename matches no known role)\n", in.Path)
			warnings = append(warnings, fmt.Sprintf("unclassified input %s skipped", in.Path))
			continue
		}

		records, err := load.File(in.Path)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", in.Path, err)
			warnings = append(warnings, fmt.Sprintf("loading %s: %v", in.Path, err))
			continue
		}

		fmt.Fprintf(w, "loaded:  %s (%d %s)\n", in.Path, len(records), in.Role)

		switch in.Role {
		case types.RoleConversations:
			conversations = append(conversations, records...)
			conversationsLoaded = true
		case types.RoleProjects:
			projects = append(projects, records...)
		case types.RoleUsers:
			users = append(users, records...)
		}
	}

	if !conversationsLoaded {
		return nil, ErrNoConversations
	}

	return &LoadResult{
		Model:    normalize.Model(conversations, projects, users),
		Warnings: warnings,
	}, nil
}

// RunResult summarizes a full export run.
type RunResult struct {
	Model    *types.ExportModel
	Written  int
	Failed   int
	Warnings []string
}

// Run executes the full pipeline into cfg.OutputDir. It returns
// ErrNoConversations before touching the output directory when the mandatory
// role is missing; write failures for individual documents are warnings, not
// errors.
func Run(ctx context.Context, paths []string, cfg types.ExportConfig, w io.Writer) (*RunResult, error) {
	loaded, err := Load(paths, w)
	if err != nil {
		return nil, err
	}
	return Publish(ctx, loaded, cfg, w), nil
}

// Publish renders the loaded model and writes the archive. Separate from
// Load so callers can report counts before any output is created.
func Publish(ctx context.Context, loaded *LoadResult, cfg types.ExportConfig, w io.Writer) *RunResult {
	cfg = cfg.Defaults()

	docs := render.Archive(loaded.Model, cfg)

	res := archive.Write(cfg.OutputDir, docs, w)
	warnings := append(loaded.Warnings, res.Warnings...)

	if err := archive.WriteManifest(cfg.OutputDir, loaded.Model.Stats, docs, warnings); err != nil {
		warnings = append(warnings, fmt.Sprintf("writing manifest: %v", err))
	}

	if cfg.SearchIndex {
		if err := searchindex.Build(ctx, cfg.OutputDir, loaded.Model); err != nil {
			warnings = append(warnings, fmt.Sprintf("building search index: %v", err))
		}
	}

	return &RunResult{
		Model:    loaded.Model,
		Written:  res.Written,
		Failed:   res.Failed,
		Warnings: warnings,
	}
}
