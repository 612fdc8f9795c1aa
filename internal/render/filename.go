// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"regexp"
	"strings"
)

const maxFilenameLen = 100

var (
	reservedChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	nonWordChars  = regexp.MustCompile(`[^a-zA-Z0-9\s\-_.]`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// safeFilename derives a filesystem-safe name from entity text: reserved and
// non-word characters become underscores, whitespace runs collapse, and the
// result is truncated. An empty result falls back to "untitled".
func safeFilename(text string) string {
	name := reservedChars.ReplaceAllString(text, "_")
	name = nonWordChars.ReplaceAllString(name, "_")
	name = whitespace.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if len(name) > maxFilenameLen {
		name = strings.TrimRight(name[:maxFilenameLen], "_")
	}
	if name == "" {
		return "untitled"
	}
	return name
}

// nameTable assigns each entity a unique filename within one collection.
// The first entity to claim a name keeps it; later collisions append the
// entity's position, counting up past names already claimed verbatim (an
// entity literally named "Chat_1" must not be overwritten by the second
// "Chat"). Deterministic, so output paths are stable across runs.
type nameTable struct {
	seen map[string]bool
}

func newNameTable() *nameTable {
	return &nameTable{seen: make(map[string]bool)}
}

func (t *nameTable) claim(text string, position int) string {
	base := safeFilename(text)
	name := base
	for n := position; t.seen[name]; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	t.seen[name] = true
	return name
}
