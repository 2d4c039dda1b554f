package store

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanh90/TimesheetSimplifier/internal/config"
	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	return cfg
}

func mustEntry(t *testing.T, date time.Time, codeID, codeName string, hours float64, notes string) model.TimeEntry {
	t.Helper()
	entry, err := model.NewTimeEntry(date, codeID, codeName, hours, notes)
	require.NoError(t, err)
	return entry
}

var day = time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

func TestNewStoreStartsEmpty(t *testing.T) {
	s := New(testConfig(t))
	assert.Zero(t, s.Dates())
	assert.Empty(t, s.EntriesForDate(day))
}

func TestAddAndDailyTotal(t *testing.T) {
	s := New(testConfig(t))

	require.NoError(t, s.Add(mustEntry(t, day, "cc-1", "Tooling", 3, "")))
	require.NoError(t, s.Add(mustEntry(t, day, "cc-2", "Meetings", 1.5, "")))

	daily := s.Daily(day)
	assert.Equal(t, 4.5, daily.TotalHours)
	assert.Len(t, daily.Entries, 2)
}

func TestDailySnapshotRemoveLeavesStoreUntouched(t *testing.T) {
	s := New(testConfig(t))

	first := mustEntry(t, day, "cc-1", "Tooling", 4, "")
	second := mustEntry(t, day, "cc-2", "Meetings", 2, "")
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(second))

	snapshot := s.Daily(day)
	snapshot.Remove(first.ID)
	require.Len(t, snapshot.Entries, 1)

	// Mutating the snapshot must not reorder or shrink the live bucket.
	bucket := s.EntriesForDate(day)
	require.Len(t, bucket, 2)
	assert.Equal(t, first.ID, bucket[0].ID)
	assert.Equal(t, second.ID, bucket[1].ID)
	assert.Equal(t, 6.0, s.Daily(day).TotalHours)
}

func TestAddRejectsOverDailyCap(t *testing.T) {
	s := New(testConfig(t))

	require.NoError(t, s.Add(mustEntry(t, day, "cc-1", "Tooling", 8, "")))

	// 8 + 17 = 25 > 24: rejected, state unchanged.
	err := s.Add(mustEntry(t, day, "cc-1", "Tooling", 17, ""))
	assert.ErrorIs(t, err, ErrDailyCapExceeded)
	assert.Equal(t, 8.0, s.Daily(day).TotalHours)
	assert.Len(t, s.EntriesForDate(day), 1)

	// Exactly reaching the cap is admitted.
	require.NoError(t, s.Add(mustEntry(t, day, "cc-1", "Tooling", 16, "")))
	assert.Equal(t, 24.0, s.Daily(day).TotalHours)
}

func TestAddHonorsConfiguredCap(t *testing.T) {
	cfg := testConfig(t)
	cfg.Features.MaxHoursPerDay = 10
	s := New(cfg)

	require.NoError(t, s.Add(mustEntry(t, day, "cc-1", "Tooling", 6, "")))
	err := s.Add(mustEntry(t, day, "cc-1", "Tooling", 5, ""))
	assert.ErrorIs(t, err, ErrDailyCapExceeded)
}

func TestDelete(t *testing.T) {
	s := New(testConfig(t))

	first := mustEntry(t, day, "cc-1", "Tooling", 3, "")
	second := mustEntry(t, day, "cc-2", "Meetings", 2, "")
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(second))

	existed, err := s.Delete(first.ID, day)
	require.NoError(t, err)
	assert.True(t, existed)

	remaining := s.EntriesForDate(day)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
	assert.Equal(t, 2.0, s.Daily(day).TotalHours)

	// Unknown id in an existing bucket: no-op, bucket still reported present.
	existed, err = s.Delete("missing", day)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Len(t, s.EntriesForDate(day), 1)

	// Date with no bucket at all.
	existed, err = s.Delete(second.ID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestEntriesInRange(t *testing.T) {
	s := New(testConfig(t))

	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	wednesday := monday.AddDate(0, 0, 2)
	friday := monday.AddDate(0, 0, 4)

	e1 := mustEntry(t, wednesday, "cc-1", "Tooling", 2, "")
	e2 := mustEntry(t, monday, "cc-1", "Tooling", 4, "")
	e3 := mustEntry(t, friday, "cc-2", "Meetings", 1, "")
	for _, e := range []model.TimeEntry{e1, e2, e3} {
		require.NoError(t, s.Add(e))
	}

	// Ascending date order regardless of insertion order.
	entries := s.EntriesInRange(monday, friday)
	require.Len(t, entries, 3)
	assert.Equal(t, e2.ID, entries[0].ID)
	assert.Equal(t, e1.ID, entries[1].ID)
	assert.Equal(t, e3.ID, entries[2].ID)

	// Endpoints are inclusive.
	entries = s.EntriesInRange(wednesday, wednesday)
	require.Len(t, entries, 1)
	assert.Equal(t, e1.ID, entries[0].ID)

	// Reversed range is empty, not an error.
	assert.Empty(t, s.EntriesInRange(friday, monday))
}

func TestWeeklySummary(t *testing.T) {
	s := New(testConfig(t))

	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Add(mustEntry(t, monday, "cc-1", "Tooling", 6, "")))
	require.NoError(t, s.Add(mustEntry(t, monday, "cc-2", "Meetings", 2, "")))
	require.NoError(t, s.Add(mustEntry(t, monday.AddDate(0, 0, 3), "cc-1", "Tooling", 7, "")))
	// Outside the week.
	require.NoError(t, s.Add(mustEntry(t, monday.AddDate(0, 0, 7), "cc-1", "Tooling", 5, "")))

	summary := s.WeeklySummary(monday)
	assert.Equal(t, 15.0, summary.TotalHours)
	assert.Len(t, summary.DailyTotals, 2)
	assert.Equal(t, 8.0, summary.DailyTotals["2025-01-06"])
	assert.Equal(t, 7.0, summary.DailyTotals["2025-01-09"])

	require.Contains(t, summary.ByChargeCode, "cc-1")
	assert.Equal(t, 13.0, summary.ByChargeCode["cc-1"].TotalHours)
}

func TestPersistenceRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg)

	first := mustEntry(t, day, "cc-1", "Tooling", 3.5, "morning work")
	second := mustEntry(t, day.AddDate(0, 0, 1), "cc-2", "Meetings", 1, "")
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(second))

	// A fresh store over the same file sees the identical mapping.
	reloaded := New(cfg)
	assert.Equal(t, 2, reloaded.Dates())

	got := reloaded.EntriesForDate(day)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, first.Hours, got[0].Hours)
	assert.Equal(t, first.Notes, got[0].Notes)
	assert.Equal(t, first.CreatedAt, got[0].CreatedAt)

	got = reloaded.EntriesForDate(day.AddDate(0, 0, 1))
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.EntriesFilePath(), []byte("{not json"), 0644))

	s := New(cfg)
	assert.Zero(t, s.Dates())

	// The store remains usable and persists over the corrupt file.
	require.NoError(t, s.Add(mustEntry(t, day, "cc-1", "Tooling", 2, "")))
	assert.Len(t, New(cfg).EntriesForDate(day), 1)
}

func TestClearAll(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg)

	require.NoError(t, s.Add(mustEntry(t, day, "cc-1", "Tooling", 2, "")))
	require.NoError(t, s.ClearAll())

	assert.Zero(t, s.Dates())
	assert.Zero(t, New(cfg).Dates())
}
