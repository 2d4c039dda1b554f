package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
)

func TestSummaryFormatter(t *testing.T) {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	summary := model.NewWeeklySummary(monday)

	e1, err := model.NewTimeEntry(monday, "cc-1", "Tooling", 6, "")
	require.NoError(t, err)
	e2, err := model.NewTimeEntry(monday, "cc-2", "Meetings", 2, "")
	require.NoError(t, err)
	summary.AddDay(model.NewDailyEntries(monday, []model.TimeEntry{e1, e2}))

	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter().Format(&buf, summary))
	out := buf.String()

	assert.Contains(t, out, "Week 2025-01-06 to 2025-01-12")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Tooling")
	assert.Contains(t, out, "Meetings")

	// Days without entries show a dash, and every day of the week appears.
	assert.Contains(t, out, "2025-01-12")
	assert.Equal(t, 6, strings.Count(out, " - "))

	// Tooling (6h) sorts above Meetings (2h).
	assert.Less(t, strings.Index(out, "Tooling"), strings.Index(out, "Meetings"))
}

func TestSummaryFormatterEmptyWeek(t *testing.T) {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	summary := model.NewWeeklySummary(monday)

	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter().Format(&buf, summary))
	out := buf.String()

	assert.Contains(t, out, "Total")
	assert.NotContains(t, out, "By charge code")
}
