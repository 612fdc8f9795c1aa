// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pdiddy/claude-archive/pkg/types"

const displayTimeFmt = "January 2, 2006 at 3:04 PM"

// formatDate renders an export timestamp for display. The empty sentinel
// renders "Unknown date"; an unparseable value passes through escaped but
// otherwise verbatim so provenance is never fabricated.
func formatDate(raw string) string {
	if raw == "" {
		return "Unknown date"
	}
	t, ok := types.ParseTimestamp(raw)
	if !ok {
		return escape(raw)
	}
	return t.Format(displayTimeFmt)
}
