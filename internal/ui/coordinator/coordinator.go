// Package coordinator routes key commands, session exits and switcher input
// to the pane and workspace use cases. All methods run on the dispatch loop.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/domain/repository"
	"github.com/bnema/gridterm/internal/logging"
	"github.com/bnema/gridterm/internal/ui/input"
)

// ErrUnknownCommand is returned by Dispatch for commands it has no handler for.
var ErrUnknownCommand = errors.New("unknown command")

// Focus locates the leaf holding keyboard focus.
type Focus struct {
	Workspace *entity.Workspace
	Leaf      entity.NodeID
}

// Config holds the dependencies of a Coordinator.
type Config struct {
	Panes      *usecase.ManagePanesUseCase
	Workspaces *usecase.ManageWorkspacesUseCase
	Switcher   *usecase.WorkspaceSwitcherUseCase
	// Layouts is optional; without it Start never restores.
	Layouts *usecase.SnapshotLayoutUseCase

	Sessions   port.SessionSpawner
	Confirmer  port.Confirmer
	Window     port.WindowCommander
	Notifier   port.Notifier
	Events     port.EventPublisher
	Subscriber port.EventSubscriber

	Keymap *input.Keymap

	HandleGap         int
	ResizeStepPercent float64
	MinPanePercent    float64
}

// Coordinator owns the workspace registry and the focus marker.
type Coordinator struct {
	panes      *usecase.ManagePanesUseCase
	workspaces *usecase.ManageWorkspacesUseCase
	switcher   *usecase.WorkspaceSwitcherUseCase
	layouts    *usecase.SnapshotLayoutUseCase

	sessions  port.SessionSpawner
	confirmer port.Confirmer
	window    port.WindowCommander
	notifier  port.Notifier
	events    port.EventPublisher

	keymap *input.Keymap

	handleGap         int
	resizeStepPercent float64
	minPanePercent    float64

	reg       *entity.WorkspaceRegistry
	focus     Focus
	lastFocus map[*entity.Workspace]entity.NodeID

	// Surface size for layouts of workspaces without their own bounds.
	surface     entity.Rect
	allocations map[*entity.Workspace][]entity.PaneRect

	quitPending    bool
	drained        bool // The last pane of the last workspace exited
	onStateChanged func()
	unsubscribe    []func()
}

// New creates a Coordinator with an empty registry and subscribes it to
// workspace requests on the event bus.
func New(ctx context.Context, cfg Config) *Coordinator {
	c := &Coordinator{
		panes:             cfg.Panes,
		workspaces:        cfg.Workspaces,
		switcher:          cfg.Switcher,
		layouts:           cfg.Layouts,
		sessions:          cfg.Sessions,
		confirmer:         cfg.Confirmer,
		window:            cfg.Window,
		notifier:          cfg.Notifier,
		events:            cfg.Events,
		keymap:            cfg.Keymap,
		handleGap:         cfg.HandleGap,
		resizeStepPercent: cfg.ResizeStepPercent,
		minPanePercent:    cfg.MinPanePercent,
		reg:               entity.NewWorkspaceRegistry(),
		lastFocus:         make(map[*entity.Workspace]entity.NodeID),
		allocations:       make(map[*entity.Workspace][]entity.PaneRect),
	}
	if c.keymap == nil {
		c.keymap = &input.Keymap{}
	}

	if cfg.Subscriber != nil {
		c.unsubscribe = append(c.unsubscribe,
			cfg.Subscriber.Subscribe(port.EventCloseWorkspace{}.EventName(), func(ev port.Event) {
				if e, ok := ev.(port.EventCloseWorkspace); ok {
					c.closeWorkspaceByIndex(ctx, e.Index)
				}
			}),
			cfg.Subscriber.Subscribe(port.EventNewWorkspace{}.EventName(), func(port.Event) {
				if err := c.NewWorkspace(ctx); err != nil {
					logging.FromContext(ctx).Warn().Err(err).Msg("new workspace request failed")
				}
			}),
		)
	}

	logging.FromContext(ctx).Debug().Msg("coordinator created")
	return c
}

// StartInput controls how the first workspaces come up.
type StartInput struct {
	WorkingDirectory string
	// RestoreLayout rebuilds the layout saved under LayoutName when set.
	RestoreLayout bool
	LayoutName    string
}

// Start populates the registry, from a saved layout when asked and available,
// otherwise with one fresh workspace.
func (c *Coordinator) Start(ctx context.Context, in StartInput) error {
	log := logging.FromContext(ctx)

	if in.RestoreLayout && c.layouts != nil {
		out, err := c.layouts.Restore(ctx, in.LayoutName)
		switch {
		case err == nil:
			c.adopt(ctx, out.Registry)
			c.SetFocus(ctx, out.FocusWorkspace, out.FocusLeaf)
			c.stateChanged()
			log.Info().
				Int("workspaces", out.Registry.Len()).
				Int("panes", out.Snapshot.PaneCount()).
				Msg("layout restored")
			return nil
		case errors.Is(err, repository.ErrLayoutNotFound):
			log.Debug().Str("layout", in.LayoutName).Msg("no saved layout, starting fresh")
		default:
			log.Warn().Err(err).Str("layout", in.LayoutName).Msg("could not restore layout, starting fresh")
		}
	}

	out, err := c.workspaces.NewWorkspace(ctx, usecase.NewWorkspaceInput{
		Registry:         c.reg,
		WorkingDirectory: in.WorkingDirectory,
	})
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	c.watchSession(ctx, out.Session)
	c.SetFocus(ctx, out.Workspace, out.Workspace.Tree.Root())
	c.stateChanged()
	return nil
}

func (c *Coordinator) adopt(ctx context.Context, reg *entity.WorkspaceRegistry) {
	c.reg = reg
	for _, ws := range reg.All() {
		for _, sid := range ws.Tree.Sessions() {
			c.watchSession(ctx, sid)
		}
	}
}

func (c *Coordinator) watchSession(ctx context.Context, sid entity.SessionID) {
	c.sessions.OnExit(sid, func(s entity.SessionID) {
		c.onSessionExit(ctx, s)
	})
}

// Registry returns the workspace registry.
func (c *Coordinator) Registry() *entity.WorkspaceRegistry {
	return c.reg
}

// SetKeymap replaces the keymap, e.g. after the config file changed.
func (c *Coordinator) SetKeymap(km *input.Keymap) {
	if km != nil {
		c.keymap = km
	}
}

// SetOnStateChanged registers a callback for layout changes worth saving.
func (c *Coordinator) SetOnStateChanged(fn func()) {
	c.onStateChanged = fn
}

func (c *Coordinator) stateChanged() {
	if ws := c.focus.Workspace; ws != nil && c.events != nil {
		c.events.Publish(port.EventLayoutChanged{Index: ws.Index})
	}
	if c.onStateChanged != nil {
		c.onStateChanged()
	}
}

// CaptureLayout snapshots the registry for persistence. Once the last
// session has exited it returns nil, so the layout saved before that exit
// stays the one restored next time.
func (c *Coordinator) CaptureLayout(ctx context.Context) (*entity.LayoutSnapshot, error) {
	if c.layouts == nil {
		return nil, errors.New("layout persistence is not configured")
	}
	if c.drained {
		logging.FromContext(ctx).Debug().Msg("no live session left, layout not captured")
		return nil, nil
	}
	return c.layouts.Capture(ctx, usecase.SaveLayoutInput{
		Registry: c.reg,
		Name:     usecase.DefaultLayoutName,
		Focused:  c.FocusedSession(),
	})
}

// Shutdown drops the event bus subscriptions.
func (c *Coordinator) Shutdown() {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
}
