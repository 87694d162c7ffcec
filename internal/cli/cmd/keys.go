package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gridterm/internal/cli/styles"
	"github.com/bnema/gridterm/internal/infrastructure/config"
	"github.com/bnema/gridterm/internal/ui/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long: `List the key bindings resolved from the [keybind] section.

Bindings that fail to parse are reported in the log and left out.`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	bindings, unbound := keymapRows(app.Ctx(), app.Config.Keybind)
	fmt.Println(styles.RenderKeymap(app.Theme, bindings, unbound))
	return nil
}

// keymapRows resolves the keybind section the same way the running core does.
func keymapRows(ctx context.Context, kb config.KeybindConfig) (bindings []styles.KeyBinding, unbound []string) {
	entries := input.NewKeymap(ctx, kb).Entries(kb)

	bound := make(map[string]bool, len(entries))
	for _, e := range entries {
		action := e.Command.String()
		bound[action] = true
		bindings = append(bindings, styles.KeyBinding{Action: action, Hotkey: e.Hotkey})
	}
	for _, b := range kb.Bindings() {
		if !bound[b.Action] {
			unbound = append(unbound, b.Action)
		}
	}
	return bindings, unbound
}
