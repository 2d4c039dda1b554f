package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all logged time entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return runClear(a, cmd.OutOrStdout(), clearYes)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false,
		"Confirm deletion of all entries")
}

// runClear wipes the entry store. Refuses to run without confirmation.
func runClear(a *app, out io.Writer, confirmed bool) error {
	if !confirmed {
		return errors.New("refusing to clear all entries without --yes")
	}

	if err := a.entries.ClearAll(); err != nil {
		return err
	}
	fmt.Fprintln(out, "All time entries cleared.")
	return nil
}
