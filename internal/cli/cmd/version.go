package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/ui/styles"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Runs without the app: the default palette is enough here.
		theme := styles.NewTheme(config.DefaultConfig())
		fmt.Fprintln(cmd.OutOrStdout(), cli.NewRenderer(theme).Version(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
