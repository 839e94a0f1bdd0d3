package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02T15:04:05"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses the upstream's ISO date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// ParseDateTime parses the upstream's ISO timestamp without zone.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(layoutDateTime, strings.TrimSpace(s))
}

// FormatDate formats a time as the upstream's ISO date.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatDisplayDate renders a date string the way booking summaries show it,
// e.g. "2025-03-01" -> "1 March 2025". Unparseable input is passed through.
func FormatDisplayDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("2 January 2006")
}
