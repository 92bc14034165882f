// Package util holds small shared helpers.
package util

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// CanonicalDateLayout is the calendar-date format used on the wire.
const CanonicalDateLayout = "2006-01-02"

// dateLayouts are the accepted incoming formats, tried in order: bare
// calendar dates, RFC3339 date-times, and the day-first form operators
// type into free-text fields.
var dateLayouts = []string{
	CanonicalDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDate normalizes a date-like value (bare date, date-time, or
// day-first text) to a calendar date, discarding any time-of-day.
// Values that match none of the accepted layouts are rejected.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errors.New("empty date value")
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}

		y, m, d := parsed.Date()

		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, errors.Errorf("unrecognized date value %q", value)
}

// FormatDate renders a time as a canonical calendar-date string.
func FormatDate(t time.Time) string {
	return t.Format(CanonicalDateLayout)
}
