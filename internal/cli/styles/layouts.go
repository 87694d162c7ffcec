package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/gridterm/internal/domain/entity"
)

const layoutTimeFormat = "2006-01-02 15:04"

// LayoutRenderer renders saved layouts.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderList renders saved layouts as a table.
func (r *LayoutRenderer) RenderList(snaps []*entity.LayoutSnapshot) string {
	if len(snaps) == 0 {
		return r.theme.Subtle.Render("No saved layouts. Layouts are saved while 'gridterm run' is active.")
	}

	t := NewTable(r.theme, "Name", "Workspaces", "Panes", "Saved")
	for _, s := range snaps {
		if s == nil {
			continue
		}
		t.Row(
			s.Name,
			strconv.Itoa(len(s.Workspaces)),
			strconv.Itoa(s.PaneCount()),
			s.SavedAt.Local().Format(layoutTimeFormat),
		)
	}
	return t.String()
}

// RenderTree renders one layout as a tree of workspaces and splits.
func (r *LayoutRenderer) RenderTree(snap *entity.LayoutSnapshot) string {
	root := tree.Root(fmt.Sprintf("%s %s", IconWorkspace, snap.Name)).
		RootStyle(r.theme.Title).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border))

	for i := range snap.Workspaces {
		ws := &snap.Workspaces[i]
		label := fmt.Sprintf("workspace %d", ws.Index)
		if i == snap.ActiveIndex {
			label += " " + r.theme.Highlight.Render("(active)")
		}
		branch := tree.Root(label)
		if ws.Root != nil {
			branch.Child(r.node(ws.Root))
		}
		root.Child(branch)
	}

	saved := r.theme.Subtle.Render("saved " + snap.SavedAt.Local().Format(layoutTimeFormat))
	return root.String() + "\n" + saved
}

func (r *LayoutRenderer) node(n *entity.PaneNodeSnapshot) any {
	if n.IsLeaf() {
		dir := n.WorkingDirectory
		if dir == "" {
			dir = "~"
		}
		label := fmt.Sprintf("%s %s", IconPane, dir)
		if n.Focused {
			label = r.theme.Highlight.Render(IconFocus+" ") + label
		}
		return label
	}
	split := tree.Root(fmt.Sprintf("%s %.2f", n.Orientation, n.Ratio))
	if n.First != nil {
		split.Child(r.node(n.First))
	}
	if n.Second != nil {
		split.Child(r.node(n.Second))
	}
	return split
}
