// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ParseTimestamp parses an export timestamp (ISO-8601, "Z" or numeric
// offset, optional fractional seconds). The second result is false for the
// empty sentinel and for values that do not parse; such values are excluded
// from date-range aggregation.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
