package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/presentation/formatter"
)

var (
	templateName  string
	templateCode  string
	templateHours float64
	templateNotes string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage quick-entry templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return runTemplateList(a, cmd.OutOrStdout())
	},
}

var templateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a quick-entry template",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return runTemplateAdd(a, cmd.OutOrStdout(), templateName, templateCode, templateHours, templateNotes)
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <template-id-or-name>",
	Short: "Remove a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return runTemplateDelete(a, cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd, templateAddCmd, templateDeleteCmd)

	templateAddCmd.Flags().StringVar(&templateName, "name", "",
		"Template name (required)")
	templateAddCmd.Flags().StringVarP(&templateCode, "code", "c", "",
		"Charge code id or friendly name (required)")
	templateAddCmd.Flags().Float64Var(&templateHours, "hours", 0,
		"Default hours (default features.default_hours)")
	templateAddCmd.Flags().StringVarP(&templateNotes, "notes", "n", "",
		"Default notes")
	templateAddCmd.MarkFlagRequired("name")
	templateAddCmd.MarkFlagRequired("code")
}

func runTemplateList(a *app, out io.Writer) error {
	templates := a.templates.All()
	if len(templates) == 0 {
		fmt.Fprintln(out, "No templates saved.")
		return nil
	}
	return formatter.RenderTemplates(out, templates)
}

func runTemplateAdd(a *app, out io.Writer, name, codeRef string, hours float64, notes string) error {
	a.refreshCodes()

	code, err := a.resolveChargeCode(codeRef)
	if err != nil {
		return err
	}
	if hours == 0 {
		hours = a.cfg.Features.DefaultHours
	}

	tmpl, err := model.NewEntryTemplate(name, code.ID, code.FriendlyName, hours, notes)
	if err != nil {
		return err
	}
	if err := a.templates.Add(tmpl); err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved template %q for %s\n", tmpl.Name, tmpl.ChargeCodeName)
	return nil
}

func runTemplateDelete(a *app, out io.Writer, ref string) error {
	id := ref
	if tmpl, ok := a.templates.FindByName(ref); ok {
		id = tmpl.ID
	}

	removed, err := a.templates.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no template matching %q", ref)
	}

	fmt.Fprintf(out, "Deleted template %s\n", ref)
	return nil
}
