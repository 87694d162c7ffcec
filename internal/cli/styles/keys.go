package styles

// KeyBinding is one row of the keymap listing.
type KeyBinding struct {
	Action string
	Hotkey string
}

// RenderKeymap renders the resolved key bindings as a table.
func RenderKeymap(theme *Theme, bindings []KeyBinding, unbound []string) string {
	t := NewTable(theme, "Action", "Hotkey")
	for _, b := range bindings {
		t.Row(b.Action, b.Hotkey)
	}
	out := t.String()
	if len(unbound) > 0 {
		out += "\n" + theme.Subtle.Render(intToString(len(unbound))+" action(s) unbound")
	}
	return out
}
