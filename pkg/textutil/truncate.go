// Package textutil holds small string helpers shared by the CLI packages.
package textutil

import "strings"

// MinTruncateLen is the smallest useful limit for Truncate: one character
// plus the "..." marker.
const MinTruncateLen = 4

// Truncate collapses all whitespace runs in s to single spaces and cuts the
// result to maxLen runes, ending it with "..." when anything was removed.
// Limits below MinTruncateLen are raised to it.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
