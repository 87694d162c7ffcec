package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/domain/repository"
	"github.com/bnema/gridterm/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// DefaultLayoutName is the name used for the layout saved on exit.
const DefaultLayoutName = "last"

var (
	// ErrVersionMismatch is returned when a saved layout is newer than this build understands.
	ErrVersionMismatch = errors.New("layout snapshot version mismatch")
	// ErrEmptyLayout is returned when a saved layout holds no workspace.
	ErrEmptyLayout = errors.New("layout snapshot has no workspace")
)

// SnapshotLayoutUseCase saves and restores workspace layouts.
type SnapshotLayoutUseCase struct {
	repo        repository.LayoutRepository
	sessions    port.SessionSpawner
	config      port.ConfigReader
	idGenerator IDGenerator
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(
	repo repository.LayoutRepository,
	sessions port.SessionSpawner,
	config port.ConfigReader,
	idGenerator IDGenerator,
) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{
		repo:        repo,
		sessions:    sessions,
		config:      config,
		idGenerator: idGenerator,
	}
}

// SaveLayoutInput contains the parameters for saving a layout.
type SaveLayoutInput struct {
	Registry *entity.WorkspaceRegistry
	Name     string
	Focused  entity.SessionID
}

// Capture builds a snapshot of the registry without saving it.
// It must run on the dispatch loop; the result can be saved from anywhere.
func (uc *SnapshotLayoutUseCase) Capture(ctx context.Context, input SaveLayoutInput) (*entity.LayoutSnapshot, error) {
	if input.Registry == nil {
		return nil, ErrRegistryRequired
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultLayoutName
	}

	dirOf := func(s entity.SessionID) string {
		dir, err := uc.sessions.WorkingDirectory(s)
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("session", string(s)).Msg("working directory unavailable for snapshot")
			return ""
		}
		return dir
	}
	return entity.SnapshotFromRegistry(
		entity.LayoutSnapshotID(uc.idGenerator()),
		name,
		input.Registry,
		dirOf,
		input.Focused,
	), nil
}

// Save captures the registry and stores it under input.Name.
func (uc *SnapshotLayoutUseCase) Save(ctx context.Context, input SaveLayoutInput) (*entity.LayoutSnapshot, error) {
	snap, err := uc.Capture(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := uc.Store(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Store persists a captured snapshot.
func (uc *SnapshotLayoutUseCase) Store(ctx context.Context, snap *entity.LayoutSnapshot) error {
	logging.FromContext(ctx).Debug().
		Str("name", snap.Name).
		Int("workspace_count", len(snap.Workspaces)).
		Int("pane_count", snap.PaneCount()).
		Msg("saving layout snapshot")

	if err := uc.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save layout snapshot: %w", err)
	}
	return nil
}

// RestoreLayoutOutput contains the rebuilt workspaces.
type RestoreLayoutOutput struct {
	Registry *entity.WorkspaceRegistry
	Snapshot *entity.LayoutSnapshot
	// FocusWorkspace and FocusLeaf locate the leaf to focus.
	FocusWorkspace *entity.Workspace
	FocusLeaf      entity.NodeID
}

// Restore loads the layout saved under name and respawns a session for every
// leaf in its recorded directory. When a spawn fails, every session started
// so far is terminated and the error returned.
func (uc *SnapshotLayoutUseCase) Restore(ctx context.Context, name string) (*RestoreLayoutOutput, error) {
	log := logging.FromContext(ctx)

	snap, err := uc.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	command := startupCommand(uc.config)
	var spawned []entity.SessionID
	spawn := func(dir string) (entity.SessionID, error) {
		if !dirExists(dir) {
			dir = ""
		}
		sid, err := uc.sessions.Spawn(ctx, port.SpawnRequest{Command: command, WorkingDirectory: dir})
		if err != nil {
			return "", err
		}
		spawned = append(spawned, sid)
		return sid, nil
	}
	rollback := func() {
		for _, sid := range spawned {
			_ = uc.sessions.Terminate(ctx, sid)
		}
	}

	reg := entity.NewWorkspaceRegistry()
	out := &RestoreLayoutOutput{Registry: reg, Snapshot: snap}
	maxIndex := 0
	for _, wsSnap := range snap.Workspaces {
		tree, focused, err := entity.BuildTree(wsSnap.Root, spawn)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("restore workspace %d: %w", wsSnap.Index, err)
		}
		ws := &entity.Workspace{Index: wsSnap.Index, Tree: tree, CreatedAt: time.Now()}
		reg.Append(ws)
		maxIndex = max(maxIndex, wsSnap.Index)

		if !focused.IsZero() {
			out.FocusWorkspace, out.FocusLeaf = ws, focused
		}
	}
	reg.RestoreNextIndex(max(snap.NextIndex, maxIndex+1))

	active := snap.ActiveIndex
	if active < 0 || active >= reg.Len() {
		active = 0
	}
	_ = reg.Activate(active)

	if out.FocusWorkspace != reg.ActiveWorkspace() {
		ws := reg.ActiveWorkspace()
		leaf, _ := ws.Tree.FirstLeaf(ws.Tree.Root())
		out.FocusWorkspace, out.FocusLeaf = ws, leaf
	}

	log.Info().
		Str("name", snap.Name).
		Int("workspace_count", reg.Len()).
		Int("pane_count", len(spawned)).
		Msg("layout restored")

	return out, nil
}

// Load returns the validated snapshot saved under name.
func (uc *SnapshotLayoutUseCase) Load(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultLayoutName
	}
	snap, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	if snap == nil {
		return nil, fmt.Errorf("load layout %q: %w", name, repository.ErrLayoutNotFound)
	}
	if snap.Version > entity.LayoutSnapshotVersion {
		logging.FromContext(ctx).Warn().
			Int("snapshot_version", snap.Version).
			Int("current_version", entity.LayoutSnapshotVersion).
			Msg("layout snapshot version is newer than current version")
		return nil, ErrVersionMismatch
	}
	if len(snap.Workspaces) == 0 {
		return nil, ErrEmptyLayout
	}
	return snap, nil
}

// List returns every saved layout, most recent first.
func (uc *SnapshotLayoutUseCase) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	snaps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return snaps, nil
}

// Delete removes the layout saved under name.
func (uc *SnapshotLayoutUseCase) Delete(ctx context.Context, name string) error {
	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	logging.FromContext(ctx).Info().Str("name", name).Msg("layout deleted")
	return nil
}
