package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

// NewWorkspace opens a workspace next to the existing ones and focuses it.
// The new session starts in the focused session's directory.
func (c *Coordinator) NewWorkspace(ctx context.Context) error {
	out, err := c.workspaces.NewWorkspace(ctx, usecase.NewWorkspaceInput{
		Registry: c.reg,
		Focused:  c.FocusedSession(),
	})
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("could not open workspace")
		c.notify(ctx, fmt.Sprintf("Could not open workspace: %v", err), port.NotificationError)
		return nil
	}
	c.watchSession(ctx, out.Session)
	c.switcher.Clamp(c.reg)
	c.SetFocus(ctx, out.Workspace, out.Workspace.Tree.Root())
	c.stateChanged()
	return nil
}

// CloseWorkspace closes ws, asking first when processes still run in it.
// Closing the last workspace requests a quit.
func (c *Coordinator) CloseWorkspace(ctx context.Context, ws *entity.Workspace) error {
	if ws == nil {
		return nil
	}
	out, err := c.workspaces.CloseWorkspace(ctx, usecase.CloseWorkspaceInput{
		Registry:  c.reg,
		Workspace: ws,
		OnClosed: func(out *usecase.CloseWorkspaceOutput) {
			c.workspaceClosed(ctx, out)
		},
	})
	if err != nil {
		return err
	}
	if out.QuitRequested {
		c.RequestQuit(ctx)
	}
	return nil
}

func (c *Coordinator) closeWorkspaceByIndex(ctx context.Context, index int) {
	ws, _ := c.reg.ByIndex(index)
	if ws == nil {
		logging.FromContext(ctx).Debug().Int("workspace", index).Msg("close requested for unknown workspace")
		return
	}
	if err := c.CloseWorkspace(ctx, ws); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Int("workspace", index).Msg("close workspace failed")
	}
}

func (c *Coordinator) workspaceClosed(ctx context.Context, out *usecase.CloseWorkspaceOutput) {
	if !out.Closed {
		return
	}
	delete(c.lastFocus, out.Workspace)
	delete(c.allocations, out.Workspace)
	c.switcher.Clamp(c.reg)
	if c.focus.Workspace == out.Workspace || c.reg.IndexOf(c.focus.Workspace) < 0 {
		c.focusWorkspace(ctx, c.reg.ActiveWorkspace())
	}
	c.stateChanged()
}

// onSessionExit collapses the exited session's leaf. A workspace losing its
// last pane is closed.
func (c *Coordinator) onSessionExit(ctx context.Context, sid entity.SessionID) {
	log := logging.FromContext(ctx)

	ws, leaf, ok := c.reg.FindSession(sid)
	if !ok {
		log.Debug().Str("session", string(sid)).Msg("exited session no longer in any workspace")
		return
	}

	out, err := c.panes.Collapse(ctx, ws, leaf)
	if err != nil {
		log.Error().Err(err).Str("session", string(sid)).Msg("could not collapse exited pane")
		return
	}
	if out.CloseWorkspace {
		if c.reg.Len() == 1 {
			c.drained = true
		}
		if err := c.CloseWorkspace(ctx, ws); err != nil {
			log.Warn().Err(err).Int("workspace", ws.Index).Msg("could not close empty workspace")
		}
		return
	}

	c.invalidate(ws)
	if !ws.Tree.Contains(c.lastFocus[ws]) {
		c.lastFocus[ws] = out.FocusFallback
	}
	if c.focus.Workspace == ws && (c.focus.Leaf == leaf || !ws.Tree.Contains(c.focus.Leaf)) {
		c.SetFocus(ctx, ws, out.FocusFallback)
	}
	c.stateChanged()
}

// RequestQuit publishes a quit request, after confirmation when ask_on_quit
// is set and any session still runs child processes.
func (c *Coordinator) RequestQuit(ctx context.Context) {
	log := logging.FromContext(ctx)

	if c.quitPending {
		return
	}
	if !c.workspaces.AskOnQuit() || !c.workspaces.AnyLiveChildren(ctx, c.reg.All()) {
		c.publishQuit(ctx)
		return
	}

	c.quitPending = true
	c.confirmer.Confirm(ctx, port.ConfirmRequest{
		Title:   "Quit gridterm?",
		Message: "Processes are still running in some terminals. Quit anyway?",
	}, func(confirmed bool) {
		c.quitPending = false
		if !confirmed {
			log.Debug().Msg("quit declined")
			return
		}
		c.publishQuit(ctx)
	})
}

func (c *Coordinator) publishQuit(ctx context.Context) {
	logging.FromContext(ctx).Info().Int("workspaces", c.reg.Len()).Msg("quit requested")
	if c.events != nil {
		c.events.Publish(port.EventQuitRequested{})
	}
}

// KeyRelease commits the switcher selection once no key is held.
func (c *Coordinator) KeyRelease(ctx context.Context, noKeysHeld bool) {
	committed, err := c.switcher.KeyRelease(ctx, c.reg, noKeysHeld)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("workspace switch failed")
	}
	if committed {
		c.focusWorkspace(ctx, c.reg.ActiveWorkspace())
		c.stateChanged()
	}
}

// SwitcherState returns the overlay state for drawing.
func (c *Coordinator) SwitcherState() entity.SwitcherState {
	return c.switcher.State()
}

// SwitcherDraw lays out the overlay for the given size.
func (c *Coordinator) SwitcherDraw(width, height float64) {
	c.switcher.Draw(c.reg, width, height)
}

// SwitcherMotion tracks the pointer over the overlay. Returns true when it
// needs a redraw.
func (c *Coordinator) SwitcherMotion(x, y float64) bool {
	if !c.switcher.Visible() {
		return false
	}
	return c.switcher.Motion(x, y)
}

// SwitcherClick handles a pointer press on the overlay.
func (c *Coordinator) SwitcherClick(ctx context.Context, x, y float64) {
	if !c.switcher.Visible() {
		return
	}
	action, err := c.switcher.Click(ctx, c.reg, x, y)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("switcher click failed")
	}
	if action == usecase.SwitcherClickThumbnail {
		c.focusWorkspace(ctx, c.reg.ActiveWorkspace())
		c.stateChanged()
	}
}
