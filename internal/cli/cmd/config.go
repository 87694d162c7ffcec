package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gridterm/internal/cli/styles"
	"github.com/bnema/gridterm/internal/infrastructure/config"
)

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the config file location, the effective configuration and its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and GRIDTERM_*
environment overrides have been merged.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to config.toml")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	_, statErr := os.Stat(app.ConfigFile)
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderPath(app.ConfigFile, statErr == nil))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := config.EncodeTOML(app.Config)
	if err != nil {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderError(err))
		return nil
	}
	fmt.Print(out)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	if configSchemaWrite {
		if err := config.GenerateSchemaFile(app.ConfigDir); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		fmt.Println(renderer.RenderSchemaWritten(app.ConfigDir))
		return nil
	}

	data, err := config.SchemaJSON()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(string(data))
	return nil
}
