package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-01-08")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 8, parsed.Day())

	_, err = ParseDate("08/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", FormatDate(parsed))
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "wednesday",
			date:      "2025-01-08",
			wantStart: "2025-01-06",
			wantEnd:   "2025-01-12",
		},
		{
			name:      "monday maps to itself",
			date:      "2025-01-06",
			wantStart: "2025-01-06",
			wantEnd:   "2025-01-12",
		},
		{
			name:      "sunday belongs to the preceding monday",
			date:      "2025-01-12",
			wantStart: "2025-01-06",
			wantEnd:   "2025-01-12",
		},
		{
			name:      "week spanning a month boundary",
			date:      "2025-02-01",
			wantStart: "2025-01-27",
			wantEnd:   "2025-02-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDate(tt.date)
			require.NoError(t, err)

			start, end := WeekBounds(day)
			assert.Equal(t, tt.wantStart, FormatDate(start))
			assert.Equal(t, tt.wantEnd, FormatDate(end))
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Sunday, end.Weekday())
		})
	}
}

func TestDayOf(t *testing.T) {
	stamp := time.Date(2025, 3, 14, 15, 9, 26, 535, time.UTC)
	day := DayOf(stamp)
	assert.Equal(t, "2025-03-14", FormatDate(day))
	assert.Zero(t, day.Hour())
	assert.Zero(t, day.Minute())
}
