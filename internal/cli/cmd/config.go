package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/infrastructure/config"
)

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration locations and schema",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file, layout store and log locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cli.NewRenderer(app.Theme).Paths(app.Paths()))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml. With --write the schema is saved as
config.schema.json next to the config file for editor completion.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json instead of printing")
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
