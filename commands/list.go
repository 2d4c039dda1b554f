package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/presentation/formatter"
)

var (
	listDate string
	listFrom string
	listTo   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show logged entries for a day or range",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return runList(a, cmd.OutOrStdout(), listDate, listFrom, listTo)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDate, "date", "",
		"Day to list (YYYY-MM-DD, default today)")
	listCmd.Flags().StringVar(&listFrom, "from", "",
		"Range start (YYYY-MM-DD); requires --to")
	listCmd.Flags().StringVar(&listTo, "to", "",
		"Range end (YYYY-MM-DD); requires --from")
}

// runList shows one day's bucket, or a flat range listing when --from/--to
// are given.
func runList(a *app, out io.Writer, dateFlag, fromFlag, toFlag string) error {
	if (fromFlag == "") != (toFlag == "") {
		return fmt.Errorf("--from and --to must be used together")
	}

	if fromFlag != "" {
		start, err := parseDateFlag(fromFlag)
		if err != nil {
			return err
		}
		end, err := parseDateFlag(toFlag)
		if err != nil {
			return err
		}
		entries := a.entries.EntriesInRange(start, end)
		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries in range.")
			return nil
		}
		return formatter.RenderEntries(out, entries)
	}

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}

	daily := a.entries.Daily(date)
	if len(daily.Entries) == 0 {
		fmt.Fprintf(out, "No entries for %s.\n", daily.Date)
		return nil
	}
	fmt.Fprintf(out, "Entries for %s\n", daily.Date)
	return formatter.RenderDaily(out, daily)
}
