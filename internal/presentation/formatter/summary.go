package formatter

import (
	"fmt"
	"io"
	"sort"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// SummaryFormatter renders a weekly summary as a text report: the window,
// per-day totals, the per-charge-code rollup, and the grand total.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format writes the report for the given summary.
func (f *SummaryFormatter) Format(w io.Writer, summary *model.WeeklySummary) error {
	_, err := fmt.Fprintf(w, "Week %s to %s\n\n",
		util.FormatDate(summary.WeekStart), util.FormatDate(summary.WeekEnd))
	if err != nil {
		return err
	}

	daily := NewTableFormatter("Date", "Day", "Hours")
	for d := summary.WeekStart; !d.After(summary.WeekEnd); d = d.AddDate(0, 0, 1) {
		key := util.FormatDate(d)
		hours, ok := summary.DailyTotals[key]
		if !ok {
			daily.AddRow(key, d.Weekday().String(), "-")
			continue
		}
		daily.AddRow(key, d.Weekday().String(), util.FormatHours(hours))
	}
	daily.SetFooter("", "Total", util.FormatHours(summary.TotalHours))
	if err := daily.Render(w); err != nil {
		return err
	}

	if len(summary.ByChargeCode) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\nBy charge code\n"); err != nil {
		return err
	}

	// Highest hours first; ties by name for stable output.
	type group struct {
		name  string
		hours float64
		count int
	}
	groups := make([]group, 0, len(summary.ByChargeCode))
	for _, g := range summary.ByChargeCode {
		groups = append(groups, group{name: g.Name, hours: g.TotalHours, count: len(g.Entries)})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].hours != groups[j].hours {
			return groups[i].hours > groups[j].hours
		}
		return groups[i].name < groups[j].name
	})

	codes := NewTableFormatter("Charge Code", "Hours", "Entries")
	for _, g := range groups {
		codes.AddRow(g.name, util.FormatHours(g.hours), fmt.Sprintf("%d", g.count))
	}
	return codes.Render(w)
}
