package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

var (
	exportFrom   string
	exportTo     string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a date range as CSV or Excel",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return runExport(a, cmd.OutOrStdout(), exportFrom, exportTo, exportFormat, exportOutput)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFrom, "from", "",
		"Range start (YYYY-MM-DD, default Monday of this week)")
	exportCmd.Flags().StringVar(&exportTo, "to", "",
		"Range end (YYYY-MM-DD, default Sunday of this week)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv",
		"Export format (csv, xlsx)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"Output file (default under paths.export_dir)")
}

// runExport materializes the range's entries. The Excel variant joins in the
// freshly refreshed charge-code repository for the accounting columns.
func runExport(a *app, out io.Writer, fromFlag, toFlag, format, output string) error {
	weekStart, weekEnd := util.WeekBounds(time.Now())

	start := weekStart
	if fromFlag != "" {
		var err error
		if start, err = util.ParseDate(fromFlag); err != nil {
			return err
		}
	}
	end := weekEnd
	if toFlag != "" {
		var err error
		if end, err = util.ParseDate(toFlag); err != nil {
			return err
		}
	}

	switch format {
	case "csv":
		if output == "" {
			output = exportPath(a, start, end, "csv")
		}
		if err := a.entries.ExportCSV(start, end, output); err != nil {
			return err
		}
	case "xlsx":
		if output == "" {
			output = exportPath(a, start, end, "xlsx")
		}
		a.refreshCodes()
		if err := a.entries.ExportExcel(start, end, output, a.repo); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q (use csv or xlsx)", format)
	}

	fmt.Fprintf(out, "Exported %s to %s to %s\n",
		util.FormatDate(start), util.FormatDate(end), output)
	return nil
}

func exportPath(a *app, start, end time.Time, ext string) string {
	name := fmt.Sprintf("time_entries_%s_%s.%s",
		util.FormatDate(start), util.FormatDate(end), ext)
	return filepath.Join(a.cfg.Paths.ExportDir, name)
}
