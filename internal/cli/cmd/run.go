package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gridterm/internal/bootstrap"
	"github.com/bnema/gridterm/internal/logging"
)

var runOpts bootstrap.Options

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the terminal core",
	Long: `Start the dispatch loop with one workspace, or restore a saved layout.

The core runs until the last workspace closes, a quit is requested, or
SIGINT/SIGTERM arrives. The layout is saved on the way out.

Examples:
  gridterm run                    # Restore "last" when layout.restore_on_startup is set
  gridterm run --layout work      # Restore the layout named "work"
  gridterm run --no-restore       # Always start with a single pane
  gridterm run --watch            # Reload key bindings when config.toml changes`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runOpts.LayoutName, "layout", "", "saved layout to restore")
	runCmd.Flags().BoolVar(&runOpts.NoRestore, "no-restore", false, "start with a single fresh workspace")
	runCmd.Flags().StringVar(&runOpts.Shell, "shell", "", "shell for new sessions (default $SHELL)")
	runCmd.Flags().StringVarP(&runOpts.WorkingDirectory, "cwd", "C", "", "working directory of the first session")
	runCmd.Flags().BoolVar(&runOpts.Watch, "watch", false, "reload key bindings when the config file changes")
}

func runRun(_ *cobra.Command, _ []string) error {
	opts := runOpts
	opts.ConfigDir = configDir
	if opts.WorkingDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.WorkingDirectory = wd
		}
	}

	// Replaced by the configured logger once the config is loaded.
	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())

	host, err := bootstrap.New(ctx, opts)
	if err != nil {
		return fmt.Errorf("start gridterm: %w", err)
	}
	return host.Run(ctx)
}
