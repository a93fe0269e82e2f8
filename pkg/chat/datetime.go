package chat

import (
	"fmt"
	"strings"
	"time"
)

// Accepted layouts for the date-time step. The canonical grammar is
// "DD.MM.YYYY, HH:MM"; the comma is optional.
var dateTimeLayouts = []string{
	"02.01.2006, 15:04",
	"02.01.2006 15:04",
}

// ParseDateTime parses a date and time (DD.MM.YYYY, HH:MM) in local time.
// Returns an error if the input does not match the grammar.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date and time required (DD.MM.YYYY, HH:MM)")
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q (expected DD.MM.YYYY, HH:MM, e.g. 15.08.2025, 18:30)", s)
}

// FormatDateTime renders a timestamp back in the canonical grammar.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006, 15:04")
}
