package model

import (
	"time"

	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// DailyEntries groups the entries of one calendar date with their derived
// total. TotalHours is recomputed on every mutation so it always equals the
// sum of the entry hours.
type DailyEntries struct {
	Date       string      `json:"date"`
	Entries    []TimeEntry `json:"entries"`
	TotalHours float64     `json:"total_hours"`
}

// NewDailyEntries builds a daily snapshot with its total precomputed.
func NewDailyEntries(date time.Time, entries []TimeEntry) DailyEntries {
	d := DailyEntries{
		Date:    util.FormatDate(date),
		Entries: entries,
	}
	d.Recalculate()
	return d
}

// Add appends an entry and updates the total.
func (d *DailyEntries) Add(entry TimeEntry) {
	d.Entries = append(d.Entries, entry)
	d.Recalculate()
}

// Remove drops any entry with the given id and updates the total. Filters
// into a fresh slice; the snapshot may share its backing array with a live
// store bucket.
func (d *DailyEntries) Remove(entryID string) {
	kept := make([]TimeEntry, 0, len(d.Entries))
	for _, e := range d.Entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	d.Entries = kept
	d.Recalculate()
}

// Recalculate recomputes the daily total from the entries.
func (d *DailyEntries) Recalculate() {
	var total float64
	for _, e := range d.Entries {
		total += e.Hours
	}
	d.TotalHours = total
}

// ChargeCodeHours accumulates a week's hours for a single charge code.
type ChargeCodeHours struct {
	Name       string      `json:"name"`
	TotalHours float64     `json:"total_hours"`
	Entries    []TimeEntry `json:"entries"`
}

// WeeklySummary aggregates a Monday-anchored 7-day window, grouped by charge
// code and by day. Built by folding DailyEntries in via AddDay.
type WeeklySummary struct {
	WeekStart    time.Time                   `json:"week_start"`
	WeekEnd      time.Time                   `json:"week_end"`
	TotalHours   float64                     `json:"total_hours"`
	ByChargeCode map[string]*ChargeCodeHours `json:"entries_by_charge_code"`
	DailyTotals  map[string]float64          `json:"daily_totals"`
}

// NewWeeklySummary creates an empty summary for the 7-day window starting at
// weekStart.
func NewWeeklySummary(weekStart time.Time) *WeeklySummary {
	return &WeeklySummary{
		WeekStart:    util.DayOf(weekStart),
		WeekEnd:      util.DayOf(weekStart).AddDate(0, 0, 6),
		ByChargeCode: make(map[string]*ChargeCodeHours),
		DailyTotals:  make(map[string]float64),
	}
}

// AddDay folds one day's entries into the summary and recomputes the grand
// total.
func (w *WeeklySummary) AddDay(daily DailyEntries) {
	w.DailyTotals[daily.Date] = daily.TotalHours

	for _, entry := range daily.Entries {
		group, ok := w.ByChargeCode[entry.ChargeCodeID]
		if !ok {
			group = &ChargeCodeHours{Name: entry.ChargeCodeName}
			w.ByChargeCode[entry.ChargeCodeID] = group
		}
		group.TotalHours += entry.Hours
		group.Entries = append(group.Entries, entry)
	}

	w.Recalculate()
}

// Recalculate recomputes the weekly total from the daily totals.
func (w *WeeklySummary) Recalculate() {
	var total float64
	for _, hours := range w.DailyTotals {
		total += hours
	}
	w.TotalHours = total
}
