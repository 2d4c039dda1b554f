package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/presentation/formatter"
)

var codesAll bool

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List available charge codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return runCodes(a, cmd.OutOrStdout(), codesAll)
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)

	codesCmd.Flags().BoolVar(&codesAll, "all", false,
		"Include inactive charge codes")
}

// runCodes refreshes and lists the charge-code reference data.
func runCodes(a *app, out io.Writer, includeInactive bool) error {
	a.refreshCodes()

	codes := a.repo.Codes()
	if !includeInactive {
		var active []model.ChargeCode
		for _, code := range codes {
			if code.Active {
				active = append(active, code)
			}
		}
		codes = active
	}

	if len(codes) == 0 {
		fmt.Fprintf(out, "No charge codes found. Place a reference file in %s.\n",
			a.cfg.Paths.ChargeCodesDir)
		return nil
	}

	if source := a.repo.SourceFile(); source != "" {
		fmt.Fprintf(out, "Source: %s\n", source)
	}
	return formatter.RenderChargeCodes(out, codes)
}
