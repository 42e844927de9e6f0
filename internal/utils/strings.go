package utils

import "fmt"

// DefaultMaxStringLength is the fallback limit used by [Truncate] when the
// caller supplies a non-positive maximum.
const DefaultMaxStringLength = 500

// Truncate shortens s to at most maxLen characters, appending a suffix that
// records the original length so readers know data was omitted. If maxLen is
// zero or negative, [DefaultMaxStringLength] is used instead.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}

// Ptr returns a pointer to v, avoiding a temporary variable when the address
// of a literal or computed value is needed.
func Ptr[T any](v T) *T {
	return &v
}
