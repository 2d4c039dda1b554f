package formatter

import (
	"io"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// RenderDaily writes one day's entries with their total.
func RenderDaily(w io.Writer, daily model.DailyEntries) error {
	table := NewTableFormatter("ID", "Charge Code", "Hours", "Notes")
	for _, entry := range daily.Entries {
		table.AddRow(shortID(entry.ID), entry.ChargeCodeName, util.FormatHours(entry.Hours), entry.Notes)
	}
	table.SetFooter("", "Total", util.FormatHours(daily.TotalHours), "")
	return table.Render(w)
}

// RenderEntries writes a flat entry list, one row per entry with its date.
func RenderEntries(w io.Writer, entries []model.TimeEntry) error {
	table := NewTableFormatter("Date", "ID", "Charge Code", "Hours", "Notes")
	var total float64
	for _, entry := range entries {
		table.AddRow(entry.Date, shortID(entry.ID), entry.ChargeCodeName, util.FormatHours(entry.Hours), entry.Notes)
		total += entry.Hours
	}
	table.SetFooter("", "", "Total", util.FormatHours(total), "")
	return table.Render(w)
}

// RenderChargeCodes writes the charge-code reference list.
func RenderChargeCodes(w io.Writer, codes []model.ChargeCode) error {
	table := NewTableFormatter("ID", "Friendly Name", "Details", "Active")
	for _, code := range codes {
		active := "yes"
		if !code.Active {
			active = "no"
		}
		table.AddRow(shortID(code.ID), code.FriendlyName, code.FullCodeString(), active)
	}
	return table.Render(w)
}

// RenderTemplates writes the quick-entry template list.
func RenderTemplates(w io.Writer, templates []model.EntryTemplate) error {
	table := NewTableFormatter("ID", "Name", "Charge Code", "Hours", "Notes")
	for _, tmpl := range templates {
		table.AddRow(shortID(tmpl.ID), tmpl.Name, tmpl.ChargeCodeName, util.FormatHours(tmpl.DefaultHours), tmpl.Notes)
	}
	return table.Render(w)
}

// shortID abbreviates a UUID for display; full ids remain available through
// exports and the persisted document.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
