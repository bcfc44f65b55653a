package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect or reset the persisted panel layout",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the panel layout the workspace will start with",
	Long: `Print open state and width of both side panels as the workspace would load
them, next to the raw values found in the layout store.`,
	Args: cobra.NoArgs,
	RunE: runLayoutShow,
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted panel layout",
	Long:  `Remove the stored panel state so the next start uses configured defaults.`,
	Args:  cobra.NoArgs,
	RunE:  runLayoutReset,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutResetCmd)
}

func runLayoutShow(cmd *cobra.Command, _ []string) error {
	reports, err := app.LayoutReport(app.Ctx())
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	out := cli.NewRenderer(app.Theme).Layout(reports, string(app.Config.Storage.Backend), app.Config.Storage.Path)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runLayoutReset(cmd *cobra.Command, _ []string) error {
	if err := app.ResetLayout(app.Ctx()); err != nil {
		return fmt.Errorf("reset layout: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("panel layout reset to defaults"))
	return nil
}
