// Package cmd provides Cobra CLI commands for gridterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gridterm/internal/cli"
	"github.com/bnema/gridterm/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "gridterm",
		Short: "A tiling terminal workspace",
		Long: `gridterm - terminal sessions in split panes, grouped into workspaces.

Features:
  - Binary split tree per workspace with keyboard resize
  - Directional focus between panes
  - Workspace switcher with live thumbnails
  - Layouts saved on exit and restored on startup

Use 'gridterm run' to start the terminal core, or explore the subcommands
for configuration, saved layouts and logs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Commands that build their own context skip the CLI app.
			switch cmd.Name() {
			case "help", "completion", "run":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
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
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "read config.toml from this directory instead of the XDG location")
}

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
