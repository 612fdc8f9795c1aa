// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive writes rendered documents into the output directory tree.
// Writes are best-effort: one failed document is reported and skipped, the
// rest still land. Partial output is an accepted terminal state; there is no
// rollback.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/claude-archive/pkg/types"
)

// WriteResult summarizes one writing pass.
type WriteResult struct {
	Written int
	Failed  int

	// Warnings carries one entry per failed document.
	Warnings []string
}

// Write creates root and any missing intermediate directories, then writes
// each document to its relative path, overwriting files already there.
// Per-document status lines go to w.
func Write(root string, docs []types.RenderedDoc, w io.Writer) WriteResult {
	var res WriteResult

	if err := os.MkdirAll(root, 0o755); err != nil {
		res.Failed = len(docs)
		res.Warnings = append(res.Warnings, fmt.Sprintf("creating output root %s: %v", root, err))
		return res
	}

	for _, doc := range docs {
		target := filepath.Join(root, filepath.FromSlash(doc.RelPath))
		if err := writeDoc(target, doc.Content); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", doc.RelPath, err)
			res.Failed++
			res.Warnings = append(res.Warnings, fmt.Sprintf("writing %s: %v", doc.RelPath, err))
			continue
		}
		res.Written++
	}

	return res
}

func writeDoc(target, content string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, []byte(content), 0o644)
}
