package util

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for store keys and
// serialized entries.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayOf truncates a time to midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the Monday-anchored week containing t: the Monday on or
// before t and the Sunday six days later.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := DayOf(t)
	// time.Weekday counts from Sunday; shift so Monday is index 0.
	sinceMonday := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -sinceMonday)
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart, weekEnd
}
