package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
	"github.com/bnema/gridterm/internal/ui/input"
	"github.com/gdamore/tcell/v2"
)

// HandleKey runs the command bound to the key event.
// Returns false when the chord is unbound and the key belongs to the terminal.
func (c *Coordinator) HandleKey(ctx context.Context, ev *tcell.EventKey) bool {
	cmd, ok := c.keymap.Lookup(input.ChordFromEvent(ev))
	if !ok {
		return false
	}
	if c.switcher.Visible() && !cmd.SwitchesWorkspace() {
		c.switcher.Hide(ctx)
	}
	if err := c.Dispatch(ctx, cmd); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("command", cmd.String()).Msg("command failed")
	}
	return true
}

// Dispatch runs a command against the focused leaf or workspace.
func (c *Coordinator) Dispatch(ctx context.Context, cmd input.Command) error {
	switch cmd {
	case input.CmdSplitVertically:
		return c.split(ctx, entity.Vertical)
	case input.CmdSplitHorizontally:
		return c.split(ctx, entity.Horizontal)
	case input.CmdCloseCurrentPane:
		return c.closeCurrentPane(ctx)
	case input.CmdCloseOtherPanes:
		return c.closeOtherPanes(ctx)

	case input.CmdFocusUp:
		return c.moveFocus(ctx, usecase.NavUp)
	case input.CmdFocusDown:
		return c.moveFocus(ctx, usecase.NavDown)
	case input.CmdFocusLeft:
		return c.moveFocus(ctx, usecase.NavLeft)
	case input.CmdFocusRight:
		return c.moveFocus(ctx, usecase.NavRight)

	case input.CmdNewWorkspace:
		return c.NewWorkspace(ctx)
	case input.CmdCloseWorkspace:
		return c.CloseWorkspace(ctx, c.focus.Workspace)
	case input.CmdSwitchPrevWorkspace:
		c.switcher.Prev(ctx, c.reg)
		return nil
	case input.CmdSwitchNextWorkspace:
		c.switcher.Next(ctx, c.reg)
		return nil

	case input.CmdCopy:
		return c.perform(ctx, port.WindowCopy)
	case input.CmdPaste:
		return c.perform(ctx, port.WindowPaste)
	case input.CmdScrollPageUp:
		return c.perform(ctx, port.WindowScrollPageUp)
	case input.CmdScrollPageDown:
		return c.perform(ctx, port.WindowScrollPageDown)
	case input.CmdZoomOut:
		return c.perform(ctx, port.WindowZoomOut)
	case input.CmdZoomIn:
		return c.perform(ctx, port.WindowZoomIn)
	case input.CmdRevertDefaultSize:
		return c.perform(ctx, port.WindowRevertSize)
	case input.CmdSearchForward:
		return c.perform(ctx, port.WindowSearchForward)
	case input.CmdSearchBackward:
		return c.perform(ctx, port.WindowSearchBackward)
	case input.CmdToggleFullscreen:
		return c.perform(ctx, port.WindowToggleFullscreen)
	case input.CmdShowHelper:
		return c.perform(ctx, port.WindowShowHelper)
	case input.CmdShowRemoteLogin:
		return c.perform(ctx, port.WindowShowRemoteLogin)
	case input.CmdShowCorrelative:
		return c.perform(ctx, port.WindowShowCorrelative)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (c *Coordinator) perform(ctx context.Context, cmd port.WindowCommand) error {
	if c.window == nil {
		logging.FromContext(ctx).Debug().Str("window_command", string(cmd)).Msg("no window commander, ignoring")
		return nil
	}
	return c.window.Perform(ctx, cmd)
}

func (c *Coordinator) split(ctx context.Context, o entity.Orientation) error {
	ws := c.focus.Workspace
	if ws == nil {
		return usecase.ErrWorkspaceRequired
	}

	out, err := c.panes.Split(ctx, usecase.SplitInput{
		Workspace:   ws,
		Target:      c.focus.Leaf,
		Orientation: o,
		Focused:     c.FocusedSession(),
	})
	if err != nil {
		var spawnErr *port.SpawnError
		if errors.As(err, &spawnErr) {
			logging.FromContext(ctx).Warn().Err(err).Msg("could not start terminal for split")
			c.notify(ctx, fmt.Sprintf("Could not start %s: %v", spawnErr.Command, spawnErr.Err), port.NotificationError)
			return nil
		}
		return err
	}

	c.watchSession(ctx, out.Session)
	c.invalidate(ws)
	c.SetFocus(ctx, ws, out.Second)
	c.stateChanged()
	return nil
}

// closeCurrentPane terminates the focused session; the tree collapses when it exits.
func (c *Coordinator) closeCurrentPane(ctx context.Context) error {
	sid := c.FocusedSession()
	if sid == "" {
		return nil
	}
	if err := c.sessions.Terminate(ctx, sid); err != nil {
		return fmt.Errorf("close pane: %w", err)
	}
	return nil
}

func (c *Coordinator) closeOtherPanes(ctx context.Context) error {
	ws := c.focus.Workspace
	if ws == nil {
		return nil
	}
	_, err := c.panes.CloseOthers(ctx, ws, c.focus.Leaf)
	return err
}

// ResizeFocused moves the divider nearest to the focused leaf.
func (c *Coordinator) ResizeFocused(ctx context.Context, dir usecase.ResizeDirection) error {
	ws := c.focus.Workspace
	if ws == nil {
		return usecase.ErrWorkspaceRequired
	}
	err := c.panes.Resize(ctx, ws, c.focus.Leaf, dir, c.resizeStepPercent, c.minPanePercent)
	if errors.Is(err, usecase.ErrNothingToResize) {
		return nil
	}
	if err != nil {
		return err
	}
	c.invalidate(ws)
	c.stateChanged()
	return nil
}

// DragDivider sets the ratio of a split in the focused workspace after the
// user moved its divider.
func (c *Coordinator) DragDivider(ctx context.Context, split entity.NodeID, ratio float64) error {
	ws := c.focus.Workspace
	if ws == nil {
		return usecase.ErrWorkspaceRequired
	}
	if err := c.panes.SetSplitRatio(ctx, usecase.SetSplitRatioInput{
		Workspace:      ws,
		Split:          split,
		Ratio:          ratio,
		MinPanePercent: c.minPanePercent,
	}); err != nil {
		return err
	}
	c.invalidate(ws)
	c.stateChanged()
	return nil
}

func (c *Coordinator) notify(ctx context.Context, msg string, kind port.NotificationType) {
	if c.notifier != nil {
		c.notifier.Show(ctx, msg, kind)
	}
}
