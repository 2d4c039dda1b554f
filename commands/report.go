package commands

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/presentation/formatter"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

var reportDate string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Weekly summary for the week containing a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(reportDate)
		if err != nil {
			return err
		}
		return runReport(a, cmd.OutOrStdout(), date)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportDate, "date", "",
		"Any date inside the week to report (YYYY-MM-DD, default today)")
}

// runReport renders the Monday-anchored weekly summary containing date.
func runReport(a *app, out io.Writer, date time.Time) error {
	weekStart, _ := util.WeekBounds(date)
	summary := a.entries.WeeklySummary(weekStart)
	return formatter.NewSummaryFormatter().Format(out, summary)
}
