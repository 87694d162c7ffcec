package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

// ManageWorkspacesUseCase handles workspace lifecycle operations.
type ManageWorkspacesUseCase struct {
	sessions        port.SessionSpawner
	config          port.ConfigReader
	confirmer       port.Confirmer
	capturer        port.ScreenCapturer
	scaler          port.BitmapScaler
	thumbnailHeight int
}

// NewManageWorkspacesUseCase creates a new workspace management use case.
// A thumbnailHeight of zero or less uses entity.ThumbnailHeight.
func NewManageWorkspacesUseCase(
	sessions port.SessionSpawner,
	config port.ConfigReader,
	confirmer port.Confirmer,
	capturer port.ScreenCapturer,
	scaler port.BitmapScaler,
	thumbnailHeight int,
) *ManageWorkspacesUseCase {
	if thumbnailHeight <= 0 {
		thumbnailHeight = entity.ThumbnailHeight
	}
	return &ManageWorkspacesUseCase{
		sessions:        sessions,
		config:          config,
		confirmer:       confirmer,
		capturer:        capturer,
		scaler:          scaler,
		thumbnailHeight: thumbnailHeight,
	}
}

// NewWorkspaceInput contains parameters for creating a workspace.
type NewWorkspaceInput struct {
	Registry *entity.WorkspaceRegistry
	// WorkingDirectory is used when it exists on disk.
	WorkingDirectory string
	// Focused is the session holding keyboard focus; its directory is the fallback.
	Focused entity.SessionID
}

// NewWorkspaceOutput contains the created workspace.
type NewWorkspaceOutput struct {
	Workspace *entity.Workspace
	Position  int
	Session   entity.SessionID
}

// NewWorkspace spawns a session, wraps it in a new workspace and activates it.
// On spawn failure the registry is untouched.
func (uc *ManageWorkspacesUseCase) NewWorkspace(ctx context.Context, input NewWorkspaceInput) (*NewWorkspaceOutput, error) {
	log := logging.FromContext(ctx)

	reg := input.Registry
	if reg == nil {
		return nil, ErrRegistryRequired
	}

	req := port.SpawnRequest{
		Command:          startupCommand(uc.config),
		WorkingDirectory: sessionDirectory(ctx, uc.config, uc.sessions, input.WorkingDirectory, input.Focused),
	}
	session, err := uc.sessions.Spawn(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("new workspace: %w", err)
	}

	if active := reg.ActiveWorkspace(); active != nil {
		uc.captureQuietly(ctx, active)
	}

	ws := entity.NewWorkspace(reg.NextIndex(), session)
	pos := reg.Append(ws)
	if err := reg.Activate(pos); err != nil {
		return nil, err
	}

	log.Info().
		Int("workspace", ws.Index).
		Int("position", pos).
		Str("session", string(session)).
		Str("dir", req.WorkingDirectory).
		Msg("workspace created")

	return &NewWorkspaceOutput{Workspace: ws, Position: pos, Session: session}, nil
}

// CloseWorkspaceInput contains parameters for closing a workspace.
type CloseWorkspaceInput struct {
	Registry  *entity.WorkspaceRegistry
	Workspace *entity.Workspace
	// OnClosed runs after the workspace was removed, immediately or once the
	// user confirmed. It is not called when nothing is removed.
	OnClosed func(*CloseWorkspaceOutput)
}

// CloseWorkspaceOutput describes the outcome of a close request.
type CloseWorkspaceOutput struct {
	// QuitRequested is set when the workspace was the last one.
	QuitRequested bool
	// Pending is set while the user is asked to confirm.
	Pending bool
	// Closed is set once the workspace is removed.
	Closed bool
	// Workspace is the removed workspace.
	Workspace *entity.Workspace
	// Active is the active position after removal.
	Active int
}

// CloseWorkspace removes a workspace and terminates its sessions.
// The last workspace is never removed; a quit is requested instead.
// When advanced.ask_on_quit is set and a session still runs child
// processes, the user is asked first.
func (uc *ManageWorkspacesUseCase) CloseWorkspace(ctx context.Context, input CloseWorkspaceInput) (*CloseWorkspaceOutput, error) {
	log := logging.FromContext(ctx)

	reg := input.Registry
	if reg == nil {
		return nil, ErrRegistryRequired
	}
	if input.Workspace == nil {
		return nil, ErrWorkspaceRequired
	}
	if reg.IndexOf(input.Workspace) < 0 {
		return nil, fmt.Errorf("close workspace %d: %w", input.Workspace.Index, entity.ErrWorkspaceNotFound)
	}

	if reg.Len() == 1 {
		log.Info().Int("workspace", input.Workspace.Index).Msg("closing last workspace, requesting quit")
		return &CloseWorkspaceOutput{QuitRequested: true, Active: reg.Active()}, nil
	}

	if uc.askOnQuit() && uc.hasLiveChildren(ctx, input.Workspace) {
		log.Debug().Int("workspace", input.Workspace.Index).Msg("workspace has running processes, asking for confirmation")
		uc.confirmer.Confirm(ctx, port.ConfirmRequest{
			Title:   "Close workspace?",
			Message: fmt.Sprintf("Processes are still running in %s. Close it anyway?", input.Workspace.Label()),
		}, func(confirmed bool) {
			if !confirmed {
				log.Debug().Int("workspace", input.Workspace.Index).Msg("workspace close declined")
				return
			}
			if reg.IndexOf(input.Workspace) < 0 || reg.Len() == 1 {
				log.Debug().Int("workspace", input.Workspace.Index).Msg("workspace changed while confirming, not closing")
				return
			}
			out := uc.remove(ctx, reg, input.Workspace)
			if input.OnClosed != nil {
				input.OnClosed(out)
			}
		})
		return &CloseWorkspaceOutput{Pending: true, Active: reg.Active()}, nil
	}

	out := uc.remove(ctx, reg, input.Workspace)
	if input.OnClosed != nil {
		input.OnClosed(out)
	}
	return out, nil
}

func (uc *ManageWorkspacesUseCase) remove(ctx context.Context, reg *entity.WorkspaceRegistry, ws *entity.Workspace) *CloseWorkspaceOutput {
	log := logging.FromContext(ctx)

	pos := reg.IndexOf(ws)
	wasActive := pos == reg.Active()

	for _, session := range ws.Tree.Sessions() {
		if err := uc.sessions.Terminate(ctx, session); err != nil {
			log.Warn().Err(err).Str("session", string(session)).Msg("failed to terminate session")
		}
	}

	if _, err := reg.Remove(pos); err != nil {
		log.Error().Err(err).Int("workspace", ws.Index).Msg("failed to remove workspace")
		return &CloseWorkspaceOutput{Active: reg.Active()}
	}
	if wasActive {
		_ = reg.Activate(max(pos-1, 0))
	}

	log.Info().
		Int("workspace", ws.Index).
		Int("remaining", reg.Len()).
		Int("active", reg.Active()).
		Msg("workspace closed")

	return &CloseWorkspaceOutput{Closed: true, Workspace: ws, Active: reg.Active()}
}

// AnyLiveChildren reports whether any session in the given workspaces still runs child processes.
func (uc *ManageWorkspacesUseCase) AnyLiveChildren(ctx context.Context, workspaces []*entity.Workspace) bool {
	for _, ws := range workspaces {
		if uc.hasLiveChildren(ctx, ws) {
			return true
		}
	}
	return false
}

func (uc *ManageWorkspacesUseCase) hasLiveChildren(ctx context.Context, ws *entity.Workspace) bool {
	for _, session := range ws.Tree.Sessions() {
		n, err := uc.sessions.LiveChildCount(session)
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("session", string(session)).Msg("could not count child processes")
			continue
		}
		if n > 0 {
			return true
		}
	}
	return false
}

// AskOnQuit reports whether closing with running processes needs confirmation.
func (uc *ManageWorkspacesUseCase) AskOnQuit() bool {
	return uc.askOnQuit()
}

func (uc *ManageWorkspacesUseCase) askOnQuit() bool {
	return uc.config != nil && uc.config.GetBool(configSectionAdvanced, configAskOnQuit)
}

// SwitchTo captures the active workspace's thumbnail and activates pos.
func (uc *ManageWorkspacesUseCase) SwitchTo(ctx context.Context, reg *entity.WorkspaceRegistry, pos int) error {
	if reg == nil {
		return ErrRegistryRequired
	}
	target := reg.At(pos)
	if target == nil {
		return fmt.Errorf("switch to %d: %w", pos, entity.ErrWorkspaceNotFound)
	}
	if pos == reg.Active() {
		return nil
	}

	if active := reg.ActiveWorkspace(); active != nil {
		uc.captureQuietly(ctx, active)
	}
	if err := reg.Activate(pos); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Int("workspace", target.Index).
		Int("position", pos).
		Msg("switched workspace")
	return nil
}

// CaptureThumbnail refreshes the workspace's switcher thumbnail from its
// on-screen surface. Workspaces that were never realized are skipped.
func (uc *ManageWorkspacesUseCase) CaptureThumbnail(ctx context.Context, ws *entity.Workspace) error {
	if ws == nil {
		return ErrWorkspaceRequired
	}
	if ws.Bounds == nil || ws.Bounds.Empty() || uc.capturer == nil || uc.scaler == nil {
		return nil
	}

	img, err := uc.capturer.CaptureVisiblePixels(ctx, *ws.Bounds)
	if err != nil {
		return fmt.Errorf("capture workspace %d: %w", ws.Index, err)
	}
	ws.Thumbnail = &entity.Thumbnail{
		Image:      uc.scaler.ScaleBitmap(img, uc.thumbnailHeight),
		CapturedAt: time.Now(),
	}

	logging.FromContext(ctx).Debug().
		Int("workspace", ws.Index).
		Int("width", ws.Thumbnail.Width()).
		Int("height", ws.Thumbnail.Height()).
		Msg("thumbnail captured")
	return nil
}

// ThumbnailHeight returns the height thumbnails are scaled to.
func (uc *ManageWorkspacesUseCase) ThumbnailHeight() int {
	return uc.thumbnailHeight
}

func (uc *ManageWorkspacesUseCase) captureQuietly(ctx context.Context, ws *entity.Workspace) {
	if err := uc.CaptureThumbnail(ctx, ws); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Int("workspace", ws.Index).Msg("thumbnail capture failed")
	}
}
