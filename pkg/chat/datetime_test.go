package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("15.08.2025, 18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 15, 18, 30, 0, 0, time.Local), got)

	// Comma is optional.
	got, err = ParseDateTime("15.08.2025 18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 15, 18, 30, 0, 0, time.Local), got)

	// Surrounding whitespace is tolerated.
	_, err = ParseDateTime("  15.08.2025, 18:30  ")
	assert.NoError(t, err)
}

func TestParseDateTimeRejections(t *testing.T) {
	for _, in := range []string{
		"",
		"2025-08-15",
		"2025-08-15 18:30",
		"15.08.2025",
		"18:30",
		"15/08/2025, 18:30",
		"32.01.2026, 10:00",
		"15.13.2025, 18:30",
		"15.08.2025, 25:30",
		"next friday",
	} {
		_, err := ParseDateTime(in)
		assert.Error(t, err, "input %q should be rejected", in)
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "", FormatDateTime(time.Time{}))
	assert.Equal(t, "15.08.2025, 18:30",
		FormatDateTime(time.Date(2025, 8, 15, 18, 30, 0, 0, time.Local)))
}
