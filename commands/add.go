package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/data/store"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

var (
	addDate     string
	addCode     string
	addHours    float64
	addNotes    string
	addTemplate string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log hours against a charge code",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(addDate)
		if err != nil {
			return err
		}
		return runAdd(a, cmd.OutOrStdout(), date, addCode, addHours, addNotes, addTemplate)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "",
		"Entry date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addCode, "code", "c", "",
		"Charge code id or friendly name")
	addCmd.Flags().Float64Var(&addHours, "hours", 0,
		"Hours to log (default features.default_hours)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "",
		"Free-text notes")
	addCmd.Flags().StringVarP(&addTemplate, "template", "t", "",
		"Apply a saved quick-entry template")
}

// runAdd admits a new entry for the given date. A template provides charge
// code, hours, and notes; explicit flags override its values.
func runAdd(a *app, out io.Writer, date time.Time, codeRef string, hours float64, notes, templateName string) error {
	a.refreshCodes()

	codeID := ""
	codeName := ""

	if templateName != "" {
		tmpl, ok := a.templates.FindByName(templateName)
		if !ok {
			return fmt.Errorf("unknown template %q (run 'timesheet template list')", templateName)
		}
		codeID = tmpl.ChargeCodeID
		codeName = tmpl.ChargeCodeName
		if hours == 0 {
			hours = tmpl.DefaultHours
		}
		if notes == "" {
			notes = tmpl.Notes
		}
	}

	if codeRef != "" {
		code, err := a.resolveChargeCode(codeRef)
		if err != nil {
			return err
		}
		codeID = code.ID
		codeName = code.FriendlyName
	}
	if codeID == "" {
		return errors.New("a charge code is required (--code or --template)")
	}

	if hours == 0 {
		hours = a.cfg.Features.DefaultHours
	}

	entry, err := model.NewTimeEntry(date, codeID, codeName, hours, notes)
	if err != nil {
		return err
	}

	if err := a.entries.Add(entry); err != nil {
		if errors.Is(err, store.ErrDailyCapExceeded) {
			daily := a.entries.Daily(date)
			return fmt.Errorf("adding %s hours would exceed the daily cap of %s (already logged: %s)",
				util.FormatHours(hours),
				util.FormatHours(a.cfg.Features.MaxHoursPerDay),
				util.FormatHours(daily.TotalHours))
		}
		return err
	}

	fmt.Fprintf(out, "Logged %s hours against %s on %s (total %s)\n",
		util.FormatHours(hours), codeName, entry.Date,
		util.FormatHours(a.entries.Daily(date).TotalHours))
	return nil
}
