package usecase

import (
	"context"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

// SwitcherClickAction tells what a click in the switcher overlay did.
type SwitcherClickAction uint8

const (
	SwitcherClickOutside SwitcherClickAction = iota
	SwitcherClickThumbnail
	SwitcherClickClose
	SwitcherClickAdd
)

// WorkspaceSwitcherUseCase drives the workspace switcher overlay.
//
// The overlay is either hidden or visible with a selected position.
// Switch keys move the selection; releasing every modifier commits it.
type WorkspaceSwitcherUseCase struct {
	workspaces *ManageWorkspacesUseCase
	events     port.EventPublisher
	state      entity.SwitcherState
}

// NewWorkspaceSwitcherUseCase creates a switcher in the hidden state.
func NewWorkspaceSwitcherUseCase(workspaces *ManageWorkspacesUseCase, events port.EventPublisher) *WorkspaceSwitcherUseCase {
	return &WorkspaceSwitcherUseCase{
		workspaces: workspaces,
		events:     events,
	}
}

// State returns a copy of the overlay state for rendering.
func (uc *WorkspaceSwitcherUseCase) State() entity.SwitcherState {
	s := uc.state
	s.Regions = append([]entity.ThumbnailRegion(nil), uc.state.Regions...)
	return s
}

// Visible reports whether the overlay is shown.
func (uc *WorkspaceSwitcherUseCase) Visible() bool {
	return uc.state.Visible
}

// Show makes the overlay visible with the active workspace selected.
// Does nothing when already visible.
func (uc *WorkspaceSwitcherUseCase) Show(ctx context.Context, reg *entity.WorkspaceRegistry) {
	if uc.state.Visible {
		return
	}
	uc.state.Visible = true
	uc.state.Selected = max(reg.Active(), 0)
	logging.FromContext(ctx).Debug().Int("selected", uc.state.Selected).Msg("workspace switcher shown")
}

// Next shows the overlay if needed and selects the following workspace, wrapping around.
func (uc *WorkspaceSwitcherUseCase) Next(ctx context.Context, reg *entity.WorkspaceRegistry) {
	uc.step(ctx, reg, 1)
}

// Prev shows the overlay if needed and selects the preceding workspace, wrapping around.
func (uc *WorkspaceSwitcherUseCase) Prev(ctx context.Context, reg *entity.WorkspaceRegistry) {
	uc.step(ctx, reg, -1)
}

func (uc *WorkspaceSwitcherUseCase) step(ctx context.Context, reg *entity.WorkspaceRegistry, delta int) {
	uc.Show(ctx, reg)
	count := reg.Len()
	if count == 0 {
		return
	}
	uc.state.Selected = ((uc.state.Selected+delta)%count + count) % count
}

// Hide hides the overlay without switching and resets its state.
func (uc *WorkspaceSwitcherUseCase) Hide(ctx context.Context) {
	if uc.state.Visible {
		logging.FromContext(ctx).Debug().Msg("workspace switcher hidden")
	}
	uc.state.Reset()
}

// Clamp keeps the selection inside the registry after workspaces were removed.
func (uc *WorkspaceSwitcherUseCase) Clamp(reg *entity.WorkspaceRegistry) {
	if uc.state.Selected >= reg.Len() {
		uc.state.Selected = max(reg.Len()-1, 0)
	}
}

// KeyRelease commits the selection once no key is held any more.
// Returns true when a switch was committed.
func (uc *WorkspaceSwitcherUseCase) KeyRelease(ctx context.Context, reg *entity.WorkspaceRegistry, noKeysHeld bool) (bool, error) {
	if !uc.state.Visible || !noKeysHeld {
		return false, nil
	}
	selected := uc.state.Selected
	uc.Hide(ctx)
	if err := uc.workspaces.SwitchTo(ctx, reg, selected); err != nil {
		return false, err
	}
	return true, nil
}

// Draw recomputes the hit regions for an overlay of the given size.
// Thumbnails are laid out centered; when they do not fit next to the add
// button everything is scaled down.
func (uc *WorkspaceSwitcherUseCase) Draw(reg *entity.WorkspaceRegistry, width, height float64) {
	const (
		offsetX  = float64(entity.SwitcherThumbnailOffset)
		addWidth = float64(entity.SwitcherAddButtonSize + entity.SwitcherAddPadding*2)
	)

	widths := make([]float64, reg.Len())
	total := 0.0
	for i, ws := range reg.All() {
		widths[i] = float64(uc.thumbnailWidth(ws))
		total += widths[i] + offsetX*2
	}

	scale := 1.0
	drawX := (width - total) / 2
	if total+addWidth*2 >= width {
		scale = width / (total + addWidth)
		drawX = offsetX
	}

	regions := make([]entity.ThumbnailRegion, 0, len(widths))
	for i, w := range widths {
		area := entity.Region{
			X: scale * (drawX - offsetX),
			Y: 0,
			W: scale * (w + offsetX*2),
			H: scale * height,
		}
		regions = append(regions, entity.ThumbnailRegion{
			Position: i,
			Area:     area,
			Close:    closeRegion(area),
		})
		drawX += w + offsetX*2
	}

	uc.state.Regions = regions
	uc.state.AddRegion = entity.Region{
		X: width - scale*addWidth,
		Y: 0,
		W: scale * addWidth,
		H: scale * height,
	}
	uc.state.Scale = scale
}

func closeRegion(area entity.Region) entity.Region {
	const size = float64(entity.SwitcherCloseButtonSize)
	return entity.Region{X: area.X + area.W - size, Y: area.Y, W: size, H: size}
}

// thumbnailWidth returns the captured width, or a 4:3 placeholder width
// for workspaces without a thumbnail yet.
func (uc *WorkspaceSwitcherUseCase) thumbnailWidth(ws *entity.Workspace) int {
	if w := ws.Thumbnail.Width(); w > 0 {
		return w
	}
	return uc.workspaces.ThumbnailHeight() * 4 / 3
}

// Motion updates hover state for a pointer at (x, y).
// Hovering a thumbnail selects it. Returns true when a redraw is needed.
func (uc *WorkspaceSwitcherUseCase) Motion(x, y float64) bool {
	before := uc.state.Hover
	beforeSel := uc.state.Selected

	uc.state.Hover = entity.HoverNone
	if region, ok := uc.regionAt(x, y); ok {
		uc.state.Selected = region.Position
		uc.state.Hover = entity.HoverThumbnail
		if region.Close.Contains(x, y) {
			uc.state.Hover = entity.HoverClose
		}
	} else if uc.state.AddRegion.Contains(x, y) {
		uc.state.Hover = entity.HoverAdd
	}

	return before != uc.state.Hover || beforeSel != uc.state.Selected
}

func (uc *WorkspaceSwitcherUseCase) regionAt(x, y float64) (entity.ThumbnailRegion, bool) {
	for _, r := range uc.state.Regions {
		if r.Area.Contains(x, y) {
			return r, true
		}
	}
	return entity.ThumbnailRegion{}, false
}

// Click handles a pointer press at (x, y).
//
// The close button asks to close that workspace and keeps the overlay open.
// A thumbnail switches to it, the add button asks for a new workspace, and
// both hide the overlay like a click outside does.
func (uc *WorkspaceSwitcherUseCase) Click(ctx context.Context, reg *entity.WorkspaceRegistry, x, y float64) (SwitcherClickAction, error) {
	log := logging.FromContext(ctx)

	if region, ok := uc.regionAt(x, y); ok {
		ws := reg.At(region.Position)
		if ws == nil {
			uc.Hide(ctx)
			return SwitcherClickOutside, nil
		}
		if region.Close.Contains(x, y) {
			uc.state.Hover = entity.HoverClose
			log.Debug().Int("workspace", ws.Index).Msg("switcher close clicked")
			uc.events.Publish(port.EventCloseWorkspace{Index: ws.Index})
			uc.Clamp(reg)
			return SwitcherClickClose, nil
		}
		uc.Hide(ctx)
		if err := uc.workspaces.SwitchTo(ctx, reg, region.Position); err != nil {
			return SwitcherClickThumbnail, err
		}
		return SwitcherClickThumbnail, nil
	}

	if uc.state.AddRegion.Contains(x, y) {
		uc.Hide(ctx)
		uc.events.Publish(port.EventNewWorkspace{})
		return SwitcherClickAdd, nil
	}

	uc.Hide(ctx)
	return SwitcherClickOutside, nil
}
