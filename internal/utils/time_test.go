package utils

import "testing"

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2026-10-01"); got != "1 October 2026" {
		t.Fatalf("FormatDisplayDate = %q", got)
	}
	// Unparseable input passes through unchanged.
	if got := FormatDisplayDate("soon"); got != "soon" {
		t.Fatalf("FormatDisplayDate passthrough = %q", got)
	}
	if got := FormatDisplayDate(""); got != "" {
		t.Fatalf("FormatDisplayDate empty = %q", got)
	}
}

func TestParseDateTime(t *testing.T) {
	ts, err := ParseDateTime("2026-08-30T12:30:00")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	if ts.Hour() != 12 || ts.Minute() != 30 {
		t.Fatalf("parsed = %v", ts)
	}
}
