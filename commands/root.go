package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/config"
	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/data/chargecode"
	"github.com/alanh90/TimesheetSimplifier/internal/data/store"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

var (
	// Global flags
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "timesheet",
		Short: "Track hours against charge codes",
		Long: `timesheet logs hours against charge codes loaded from a spreadsheet or CSV
reference file, and reports, aggregates, and exports them.

Examples:
  timesheet add --code "Platform Work" --hours 6      # Log hours for today
  timesheet add --template standup                    # Log a saved template
  timesheet list --date 2025-01-08                    # Show a day's entries
  timesheet report                                    # Weekly summary for this week
  timesheet export --format xlsx                      # Export this week to Excel
  timesheet codes                                     # List available charge codes`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml",
		"Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging to the console")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// app bundles the long-lived services every command works against. They are
// constructed once per invocation and passed by reference; nothing except the
// logger is process-global.
type app struct {
	cfg       *config.Config
	repo      *chargecode.Repository
	entries   *store.EntryStore
	templates *store.TemplateStore
}

// newApp loads configuration, initializes logging, and wires the services.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	util.InitLogger(logLevel, filepath.Join(cfg.Paths.DataDir, "timesheet.log"), debug)

	return &app{
		cfg:       cfg,
		repo:      chargecode.NewRepository(cfg),
		entries:   store.New(cfg),
		templates: store.NewTemplateStore(cfg),
	}, nil
}

// refreshCodes polls the reference file and reloads it when stale. Reload
// failures are reported but do not abort the command; stale data beats none.
func (a *app) refreshCodes() {
	reloaded, err := a.repo.RefreshIfStale()
	if err != nil {
		util.LogWarnf("Could not refresh charge codes: %v", err)
		return
	}
	if reloaded {
		util.LogDebugf("Reloaded charge codes from %s", a.repo.SourceFile())
	}
}

// resolveChargeCode accepts either a charge-code identifier or a friendly
// name.
func (a *app) resolveChargeCode(ref string) (model.ChargeCode, error) {
	if code, ok := a.repo.Lookup(ref); ok {
		return code, nil
	}
	if code, ok := a.repo.LookupByName(ref); ok {
		return code, nil
	}
	return model.ChargeCode{}, fmt.Errorf("unknown charge code %q (run 'timesheet codes' to list them)", ref)
}

// parseDateFlag parses a --date value, defaulting to today when empty.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return util.DayOf(time.Now()), nil
	}
	return util.ParseDate(value)
}
