package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/alanh90/TimesheetSimplifier/internal/config"
	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// ErrDailyCapExceeded is returned by Add when an entry would push a day's
// total over the configured maximum. The entry is not admitted and no state
// changes.
var ErrDailyCapExceeded = errors.New("daily hours cap exceeded")

// EntryStore owns the date-keyed time entries and their on-disk document.
// Every mutation rewrites the whole document; at personal/team scale that is
// cheap, but it is O(total entries) per write and concurrent processes would
// clobber each other's rewrites. One process at a time is assumed.
type EntryStore struct {
	cfg     *config.Config
	path    string
	entries map[string][]model.TimeEntry
}

// New creates a store bound to the configured entries file and eagerly loads
// any persisted entries. A corrupt or unreadable file degrades to an empty
// store rather than failing.
func New(cfg *config.Config) *EntryStore {
	s := &EntryStore{
		cfg:     cfg,
		path:    cfg.EntriesFilePath(),
		entries: make(map[string][]model.TimeEntry),
	}
	s.load()
	return s
}

// load reads the persisted document into memory.
func (s *EntryStore) load() {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		util.LogWarnf("Cannot read entries file %s, starting empty: %v", s.path, err)
		return
	}

	var entries map[string][]model.TimeEntry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		util.LogWarnf("Corrupt entries file %s, starting empty: %v", s.path, err)
		return
	}

	s.entries = entries
	util.LogDebugf("Loaded entries for %d dates from %s", len(entries), s.path)
}

// save rewrites the full document. Written to a temp file and renamed so a
// failed write leaves the previous document intact.
func (s *EntryStore) save() error {
	data, err := sonic.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write entries temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace entries file: %w", err)
	}
	return nil
}

// Add admits an entry into its date bucket. If the bucket total plus the new
// hours would exceed the configured daily cap, the entry is rejected with
// ErrDailyCapExceeded and nothing changes. Otherwise the entry is appended
// and the store is persisted; a failed write rolls the bucket back.
func (s *EntryStore) Add(entry model.TimeEntry) error {
	bucket := s.entries[entry.Date]

	var total float64
	for _, e := range bucket {
		total += e.Hours
	}
	if total+entry.Hours > s.cfg.Features.MaxHoursPerDay {
		util.LogDebugf("Rejected entry for %s: %s + %s exceeds cap %s",
			entry.Date, util.FormatHours(total), util.FormatHours(entry.Hours),
			util.FormatHours(s.cfg.Features.MaxHoursPerDay))
		return ErrDailyCapExceeded
	}

	s.entries[entry.Date] = append(bucket, entry)
	if err := s.save(); err != nil {
		s.restoreBucket(entry.Date, bucket)
		return err
	}
	return nil
}

// EntriesForDate returns the bucket for the given calendar day, empty when
// nothing was logged.
func (s *EntryStore) EntriesForDate(date time.Time) []model.TimeEntry {
	return s.entries[util.FormatDate(date)]
}

// Daily builds a snapshot of the date's entries with its recomputed total.
func (s *EntryStore) Daily(date time.Time) model.DailyEntries {
	return model.NewDailyEntries(date, s.EntriesForDate(date))
}

// Delete removes any entry with the given id from the date's bucket and
// persists. Reports whether the date bucket existed before the call; deleting
// an unknown id from an existing bucket is a persisted no-op.
func (s *EntryStore) Delete(entryID string, date time.Time) (bool, error) {
	key := util.FormatDate(date)
	bucket, existed := s.entries[key]
	if !existed {
		return false, nil
	}

	kept := make([]model.TimeEntry, 0, len(bucket))
	for _, e := range bucket {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}

	s.entries[key] = kept
	if err := s.save(); err != nil {
		s.entries[key] = bucket
		return true, err
	}
	return true, nil
}

// EntriesInRange concatenates the buckets of every day in [start, end],
// inclusive of both endpoints, in ascending date order. A reversed range is
// treated as empty.
func (s *EntryStore) EntriesInRange(start, end time.Time) []model.TimeEntry {
	var entries []model.TimeEntry
	for d := util.DayOf(start); !d.After(util.DayOf(end)); d = d.AddDate(0, 0, 1) {
		entries = append(entries, s.EntriesForDate(d)...)
	}
	return entries
}

// WeeklySummary folds the 7 days starting at weekStart into a summary,
// skipping days without entries.
func (s *EntryStore) WeeklySummary(weekStart time.Time) *model.WeeklySummary {
	summary := model.NewWeeklySummary(weekStart)
	for d := summary.WeekStart; !d.After(summary.WeekEnd); d = d.AddDate(0, 0, 1) {
		daily := s.Daily(d)
		if len(daily.Entries) == 0 {
			continue
		}
		summary.AddDay(daily)
	}
	return summary
}

// ClearAll empties the store and persists the empty document.
func (s *EntryStore) ClearAll() error {
	previous := s.entries
	s.entries = make(map[string][]model.TimeEntry)
	if err := s.save(); err != nil {
		s.entries = previous
		return err
	}
	util.LogInfo("Cleared all time entries")
	return nil
}

// Dates returns the number of dates with at least one stored bucket.
func (s *EntryStore) Dates() int {
	return len(s.entries)
}

func (s *EntryStore) restoreBucket(key string, bucket []model.TimeEntry) {
	if bucket == nil {
		delete(s.entries, key)
		return
	}
	s.entries[key] = bucket
}
