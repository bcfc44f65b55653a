// Package cmd provides Cobra CLI commands for workbench.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "workbench [project-dir...]",
		Short: "A tabbed terminal workspace for project files",
		Long: `Workbench - browse a project, open files in tabs and keep scratch notes,
all inside the terminal.

Features:
  - Tab bar with keyboard cycling, close, pin and drag to reorder
  - Resizable side panels whose layout survives restarts
  - Fuzzy file navigator with syntax highlighted previews
  - Markdown outline in the inspector
  - Live reload of the configuration file

Each argument is a project directory; ctrl+o switches between them.
Without arguments the projects listed in the config are opened, or the
current directory.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return app.RunWorkspace(args)
		},
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
