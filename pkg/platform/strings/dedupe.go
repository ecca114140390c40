// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitDedupeAndTrim splits every value on sep and dedupes the trimmed
// parts. A nil input stays nil; any other input yields a non-nil slice, so
// callers can tell "absent" from "present but empty".
//
// Example:
//
//	SplitDedupeAndTrim([]string{"a, b", "b,c"}, ",")
//	// Returns: []string{"a", "b", "c"}
func SplitDedupeAndTrim(values []string, sep string) []string {
	if values == nil {
		return nil
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strings.Split(v, sep)...)
	}

	return DedupeAndTrim(parts)
}
