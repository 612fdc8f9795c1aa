// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns a semantic role to each input file by filename
// analysis. Classification is a pure function of the base filename.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/claude-archive/pkg/types"
)

// rules are evaluated in order; the first matching substring wins, so a
// filename can never land in more than one role.
var rules = []struct {
	substr string
	role   types.Role
}{
	{"conversation", types.RoleConversations},
	{"project", types.RoleProjects},
	{"user", types.RoleUsers},
}

// Path returns the role for a single input path based on its lowercased
// base filename.
func Path(path string) types.Role {
	name := strings.ToLower(filepath.Base(path))
	for _, r := range rules {
		if strings.Contains(name, r.substr) {
			return r.role
		}
	}
	return types.RoleUnknown
}

// Classified pairs an input path with its inferred role.
type Classified struct {
	Path string
	Role types.Role
}

// Paths classifies every input path, preserving input order. Unknown files
// are included so the caller can report them.
func Paths(paths []string) []Classified {
	out := make([]Classified, len(paths))
	for i, p := range paths {
		out[i] = Classified{Path: p, Role: Path(p)}
	}
	return out
}
