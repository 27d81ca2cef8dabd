// Package strings provides string slice utilities used by the rule and CLI layers.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  CS101 ", "CS102", "CS101", "", "  "})
//	// Returns: []string{"CS101", "CS102"}
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

// Duplicates returns every value that occurs more than once, each reported
// once, in order of its second occurrence. Values are compared exactly.
//
// Example:
//
//	Duplicates([]string{"Mon-9", "Tue-10", "Mon-9", "Mon-9"})
//	// Returns: []string{"Mon-9"}
func Duplicates(values []string) []string {
	if len(values) < 2 {
		return nil
	}

	counts := make(map[string]int, len(values))
	var dups []string
	for _, v := range values {
		counts[v]++
		if counts[v] == 2 {
			dups = append(dups, v)
		}
	}
	return dups
}

// Contains reports whether values holds target exactly.
func Contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// TrimEmpty trims whitespace from each element and drops empty ones.
// Duplicates are kept.
func TrimEmpty(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
