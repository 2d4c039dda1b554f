package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

var deleteDate string

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Remove a logged entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(deleteDate)
		if err != nil {
			return err
		}
		return runDelete(a, cmd.OutOrStdout(), args[0], date)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVar(&deleteDate, "date", "",
		"Date of the entry (YYYY-MM-DD, default today)")
}

// runDelete removes the entry with the given id from the date's bucket. The
// id may be the unique prefix shown by 'timesheet list'.
func runDelete(a *app, out io.Writer, idRef string, date time.Time) error {
	id, err := resolveEntryID(a, idRef, date)
	if err != nil {
		return err
	}

	existed, err := a.entries.Delete(id, date)
	if err != nil {
		return err
	}
	if !existed {
		fmt.Fprintf(out, "No entries recorded for %s.\n", util.FormatDate(date))
		return nil
	}

	fmt.Fprintf(out, "Deleted entry %s from %s (total %s)\n",
		idRef, util.FormatDate(date),
		util.FormatHours(a.entries.Daily(date).TotalHours))
	return nil
}

// resolveEntryID expands an id prefix to the full identifier, failing when
// the prefix is ambiguous. An unknown prefix is passed through untouched so
// the store's no-op delete semantics apply.
func resolveEntryID(a *app, idRef string, date time.Time) (string, error) {
	var matches []string
	for _, entry := range a.entries.EntriesForDate(date) {
		if strings.HasPrefix(entry.ID, idRef) {
			matches = append(matches, entry.ID)
		}
	}

	switch len(matches) {
	case 0:
		return idRef, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("entry id %q is ambiguous (%d matches)", idRef, len(matches))
	}
}
