package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/cli/styles"
	"github.com/bnema/gridterm/internal/domain/repository"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `List, inspect and delete saved workspace layouts.

The layout named "last" is written automatically while 'gridterm run' is active
and restored on startup when layout.restore_on_startup is enabled.`,
	RunE: runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the pane tree of a saved layout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLayoutsShow,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runLayoutsDelete,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsShowCmd)
	layoutsCmd.AddCommand(layoutsDeleteCmd)
}

func runLayoutsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	snaps, err := app.Layouts.List(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(styles.NewLayoutRenderer(app.Theme).RenderList(snaps))
	return nil
}

func runLayoutsShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	name := usecase.DefaultLayoutName
	if len(args) == 1 {
		name = args[0]
	}

	snap, err := app.Layouts.Load(app.Ctx(), name)
	if errors.Is(err, repository.ErrLayoutNotFound) {
		return fmt.Errorf("no layout named %q", name)
	}
	if err != nil {
		return err
	}
	fmt.Println(styles.NewLayoutRenderer(app.Theme).RenderTree(snap))
	return nil
}

func runLayoutsDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Layouts.Delete(app.Ctx(), args[0]); err != nil {
		if errors.Is(err, repository.ErrLayoutNotFound) {
			return fmt.Errorf("no layout named %q", args[0])
		}
		return err
	}
	fmt.Printf("%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), args[0])
	return nil
}
