package coordinator

import (
	"context"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

// Focused returns the focus marker.
func (c *Coordinator) Focused() Focus {
	return c.focus
}

// FocusedSession returns the session in the focused leaf, or "" when nothing has focus.
func (c *Coordinator) FocusedSession() entity.SessionID {
	ws := c.focus.Workspace
	if ws == nil {
		return ""
	}
	n, ok := ws.Tree.Node(c.focus.Leaf)
	if !ok || !n.IsLeaf() {
		return ""
	}
	return n.Session
}

// SetFocus moves keyboard focus to leaf in ws and retitles the window.
// A stale or non-leaf handle falls back to the workspace's first leaf.
func (c *Coordinator) SetFocus(ctx context.Context, ws *entity.Workspace, leaf entity.NodeID) {
	if ws == nil {
		return
	}
	n, ok := ws.Tree.Node(leaf)
	if !ok || !n.IsLeaf() {
		leaf, _ = ws.Tree.FirstLeaf(ws.Tree.Root())
		n, _ = ws.Tree.Node(leaf)
	}

	c.focus = Focus{Workspace: ws, Leaf: leaf}
	c.lastFocus[ws] = leaf

	title := ws.Label()
	if dir, err := c.sessions.WorkingDirectory(n.Session); err == nil && dir != "" {
		title = dir
	}
	if c.events != nil {
		c.events.Publish(port.EventTitleChanged{Title: title})
	}

	logging.FromContext(ctx).Trace().
		Int("workspace", ws.Index).
		Str("leaf", leaf.String()).
		Str("session", string(n.Session)).
		Msg("focus set")
}

// focusWorkspace focuses the leaf ws last had focus on.
func (c *Coordinator) focusWorkspace(ctx context.Context, ws *entity.Workspace) {
	if ws == nil {
		return
	}
	c.SetFocus(ctx, ws, c.lastFocus[ws])
}

// SetBounds sets the surface size used to lay out workspaces that have no
// bounds of their own.
func (c *Coordinator) SetBounds(r entity.Rect) {
	c.surface = r
}

// SetWorkspaceBounds records the size ws was last drawn at.
func (c *Coordinator) SetWorkspaceBounds(ws *entity.Workspace, r entity.Rect) {
	if ws == nil {
		return
	}
	ws.Bounds = &r
}

// SetAllocations records the on-screen rectangles the renderer gave each
// leaf of ws. They take precedence over computed layouts for navigation
// until the layout changes.
func (c *Coordinator) SetAllocations(ws *entity.Workspace, rects []entity.PaneRect) {
	if ws == nil {
		return
	}
	if len(rects) == 0 {
		delete(c.allocations, ws)
		return
	}
	c.allocations[ws] = rects
}

// Layout returns the leaf rectangles of ws.
func (c *Coordinator) Layout(ws *entity.Workspace) []entity.PaneRect {
	if ws == nil {
		return nil
	}
	if rects, ok := c.allocations[ws]; ok {
		return rects
	}
	bounds := c.surface
	if ws.Bounds != nil && !ws.Bounds.Empty() {
		bounds = *ws.Bounds
	}
	return ws.Tree.Layout(bounds, c.handleGap)
}

func (c *Coordinator) moveFocus(ctx context.Context, dir usecase.NavigateDirection) error {
	ws := c.focus.Workspace
	if ws == nil {
		return nil
	}

	rects := c.Layout(ws)
	var current entity.PaneRect
	found := false
	for _, r := range rects {
		if r.Node == c.focus.Leaf {
			current = r
			found = true
			break
		}
	}
	if !found {
		logging.FromContext(ctx).Debug().Str("leaf", c.focus.Leaf.String()).Msg("focused leaf has no allocation")
		return nil
	}

	next, ok := usecase.NavigateFocus(usecase.NavigateInput{
		Current:    current,
		Candidates: rects,
		Direction:  dir,
		HandleGap:  c.handleGap,
	})
	if !ok {
		return nil
	}
	c.SetFocus(ctx, ws, next.Node)
	return nil
}

// invalidate drops cached allocations after the tree of ws changed shape.
func (c *Coordinator) invalidate(ws *entity.Workspace) {
	delete(c.allocations, ws)
}
