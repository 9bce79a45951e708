package utils

import "strings"

// SplitCommaList splits a comma-separated filter into trimmed, lowercased
// terms. Empty terms are dropped.
func SplitCommaList(s string) []string {
	var terms []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// ContainsAnyFold reports whether s contains any of the lowercased terms,
// ignoring case.
func ContainsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// ValueOrDefault returns s, or def when s is blank.
func ValueOrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
