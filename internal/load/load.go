// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package load reads classified export files into loosely typed records.
// Field-level interpretation is left to the normalizer; the loader only
// requires that a file's top level is a JSON array of objects.
package load

import (
	"encoding/json"
	"fmt"
	"os"
)

// Record is one raw export record. Values may be nested maps and arrays to
// arbitrary depth.
type Record map[string]any

// File reads and decodes one export file. A missing file and malformed JSON
// are both recoverable per-file failures; the caller skips the file and
// carries on with the rest of the run.
func File(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
