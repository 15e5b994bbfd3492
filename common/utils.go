package common

import "strings"

// Coalesce returns the first non-zero value, or the zero value if all are zero.
// Config normalization uses it to fall back to defaults for unset fields.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// CoalesceString returns the first value that is not blank after trimming, trimmed.
func CoalesceString(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
