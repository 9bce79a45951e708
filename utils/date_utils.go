package utils

import (
	"strings"
	"time"
)

var recordDateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// ParseRecordDate parses the arrival date formats seen in the price datasets.
func ParseRecordDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatRecordDate renders a parsed arrival date as YYYY-MM-DD, or returns
// the raw value when it could not be parsed.
func FormatRecordDate(raw string) string {
	t, ok := ParseRecordDate(raw)
	if !ok {
		return strings.TrimSpace(raw)
	}
	return t.Format("2006-01-02")
}
