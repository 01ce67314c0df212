package utils

import (
	"strings"
	"time"
)

// ParseDate parses a yyyy-mm-dd query parameter. An empty string yields a
// nil date, meaning that side of the range is unbounded.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseCSVList splits a comma-separated multi-select query parameter into
// its values, trimming spaces and dropping empty entries.
func ParseCSVList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return nil
	}

	return values
}
