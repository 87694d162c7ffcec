package usecase_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/port/mocks"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
)

func newSwitcher(t *testing.T) (*usecase.WorkspaceSwitcherUseCase, *mocks.MockEventPublisher) {
	t.Helper()
	events := mocks.NewMockEventPublisher(t)
	workspaces := usecase.NewManageWorkspacesUseCase(mocks.NewMockSessionSpawner(t), nil, nil, nil, nil, 0)
	return usecase.NewWorkspaceSwitcherUseCase(workspaces, events), events
}

func TestWorkspaceSwitcher_SelectionWraps(t *testing.T) {
	ctx := testContext()
	sw, _ := newSwitcher(t)
	reg := newRegistry("s1", "s2", "s3")

	sw.Prev(ctx, reg)
	require.True(t, sw.Visible())
	assert.Equal(t, 2, sw.State().Selected, "prev from the first wraps to the last")

	sw.Next(ctx, reg)
	assert.Equal(t, 0, sw.State().Selected, "next from the last wraps to the first")

	sw.Next(ctx, reg)
	sw.Next(ctx, reg)
	assert.Equal(t, 2, sw.State().Selected)
}

func TestWorkspaceSwitcher_ShowSelectsActive(t *testing.T) {
	ctx := testContext()
	sw, _ := newSwitcher(t)
	reg := newRegistry("s1", "s2", "s3")
	require.NoError(t, reg.Activate(1))

	sw.Show(ctx, reg)
	assert.Equal(t, 1, sw.State().Selected)

	sw.Hide(ctx)
	assert.False(t, sw.Visible())
	assert.Equal(t, 0, sw.State().Selected, "hide resets the selection")
}

func TestWorkspaceSwitcher_KeyReleaseCommits(t *testing.T) {
	ctx := testContext()
	sw, _ := newSwitcher(t)
	reg := newRegistry("s1", "s2", "s3")

	committed, err := sw.KeyRelease(ctx, reg, true)
	require.NoError(t, err)
	assert.False(t, committed, "nothing to commit while hidden")

	sw.Next(ctx, reg)
	sw.Next(ctx, reg)

	committed, err = sw.KeyRelease(ctx, reg, false)
	require.NoError(t, err)
	assert.False(t, committed, "modifier still held")
	assert.True(t, sw.Visible())

	committed, err = sw.KeyRelease(ctx, reg, true)
	require.NoError(t, err)
	assert.True(t, committed)
	assert.False(t, sw.Visible())
	assert.Equal(t, 2, reg.Active())
}

func TestWorkspaceSwitcher_DrawCentersWhenItFits(t *testing.T) {
	ctx := testContext()
	sw, _ := newSwitcher(t)
	reg := newRegistry("s1", "s2", "s3")
	sw.Show(ctx, reg)

	sw.Draw(reg, 1000, entity.SwitcherHeight)
	state := sw.State()

	// Placeholders are 160 wide: 3 * (160 + 20) = 540, centered in 1000.
	require.Len(t, state.Regions, 3)
	assert.InDelta(t, 1.0, state.Scale, 1e-9)
	assert.Equal(t, entity.Region{X: 220, Y: 0, W: 180, H: 160}, state.Regions[0].Area)
	assert.Equal(t, entity.Region{X: 400, Y: 0, W: 180, H: 160}, state.Regions[1].Area)
	assert.Equal(t, entity.Region{X: 580, Y: 0, W: 180, H: 160}, state.Regions[2].Area)
	assert.Equal(t, entity.Region{X: 360, Y: 0, W: 40, H: 40}, state.Regions[0].Close)
	assert.Equal(t, entity.Region{X: 892, Y: 0, W: 108, H: 160}, state.AddRegion)
}

func TestWorkspaceSwitcher_DrawScalesWhenCrowded(t *testing.T) {
	ctx := testContext()
	sw, _ := newSwitcher(t)
	reg := newRegistry("s1", "s2", "s3")
	reg.At(1).Thumbnail = &entity.Thumbnail{Image: imageOfSize(200, 120)}
	sw.Show(ctx, reg)

	sw.Draw(reg, 600, entity.SwitcherHeight)
	state := sw.State()

	// total = 180 + 220 + 180 = 580; scale = 600 / (580 + 108)
	scale := 600.0 / 688.0
	assert.InDelta(t, scale, state.Scale, 1e-9)
	assert.InDelta(t, 0, state.Regions[0].Area.X, 1e-9)
	assert.InDelta(t, 180*scale, state.Regions[1].Area.X, 1e-9)
	assert.InDelta(t, 220*scale, state.Regions[1].Area.W, 1e-9)
	assert.InDelta(t, 400*scale, state.Regions[2].Area.X, 1e-9)
	assert.InDelta(t, 160*scale, state.Regions[2].Area.H, 1e-9)
	assert.InDelta(t, 600-108*scale, state.AddRegion.X, 1e-9)
	assert.InDelta(t, 108*scale, state.AddRegion.W, 1e-9)
}

func TestWorkspaceSwitcher_MotionHover(t *testing.T) {
	ctx := testContext()
	sw, _ := newSwitcher(t)
	reg := newRegistry("s1", "s2", "s3")
	sw.Show(ctx, reg)
	sw.Draw(reg, 1000, entity.SwitcherHeight)

	tests := []struct {
		name     string
		x, y     float64
		hover    entity.HoverTarget
		selected int
		redraw   bool
	}{
		{"over second thumbnail", 450, 100, entity.HoverThumbnail, 1, true},
		{"same spot again", 450, 100, entity.HoverThumbnail, 1, false},
		{"close button of first", 370, 10, entity.HoverClose, 0, true},
		{"add button", 900, 50, entity.HoverAdd, 0, true},
		{"empty space", 100, 50, entity.HoverNone, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.redraw, sw.Motion(tt.x, tt.y))
			state := sw.State()
			assert.Equal(t, tt.hover, state.Hover)
			assert.Equal(t, tt.selected, state.Selected)
		})
	}
}

func TestWorkspaceSwitcher_Click(t *testing.T) {
	t.Run("close keeps the overlay open", func(t *testing.T) {
		ctx := testContext()
		sw, events := newSwitcher(t)
		reg := newRegistry("s1", "s2", "s3")
		sw.Show(ctx, reg)
		sw.Draw(reg, 1000, entity.SwitcherHeight)

		events.EXPECT().Publish(port.EventCloseWorkspace{Index: 1}).Return()

		action, err := sw.Click(ctx, reg, 370, 10)
		require.NoError(t, err)
		assert.Equal(t, usecase.SwitcherClickClose, action)
		assert.True(t, sw.Visible())
		assert.Equal(t, 3, reg.Len(), "removal is left to the close handler")
	})

	t.Run("thumbnail switches and hides", func(t *testing.T) {
		ctx := testContext()
		sw, _ := newSwitcher(t)
		reg := newRegistry("s1", "s2", "s3")
		sw.Show(ctx, reg)
		sw.Draw(reg, 1000, entity.SwitcherHeight)

		action, err := sw.Click(ctx, reg, 600, 100)
		require.NoError(t, err)
		assert.Equal(t, usecase.SwitcherClickThumbnail, action)
		assert.False(t, sw.Visible())
		assert.Equal(t, 2, reg.Active())
	})

	t.Run("add requests a workspace and hides", func(t *testing.T) {
		ctx := testContext()
		sw, events := newSwitcher(t)
		reg := newRegistry("s1")
		sw.Show(ctx, reg)
		sw.Draw(reg, 1000, entity.SwitcherHeight)

		events.EXPECT().Publish(port.EventNewWorkspace{}).Return()

		action, err := sw.Click(ctx, reg, 950, 100)
		require.NoError(t, err)
		assert.Equal(t, usecase.SwitcherClickAdd, action)
		assert.False(t, sw.Visible())
	})

	t.Run("outside hides", func(t *testing.T) {
		ctx := testContext()
		sw, _ := newSwitcher(t)
		reg := newRegistry("s1", "s2", "s3")
		sw.Show(ctx, reg)
		sw.Draw(reg, 1000, entity.SwitcherHeight)

		action, err := sw.Click(ctx, reg, 210, 100)
		require.NoError(t, err)
		assert.Equal(t, usecase.SwitcherClickOutside, action)
		assert.False(t, sw.Visible())
		assert.Equal(t, 0, reg.Active())
	})
}

func TestWorkspaceSwitcher_ClampAfterRemoval(t *testing.T) {
	ctx := testContext()
	sw, _ := newSwitcher(t)
	reg := newRegistry("s1", "s2", "s3")
	sw.Prev(ctx, reg)
	require.Equal(t, 2, sw.State().Selected)

	_, err := reg.Remove(2)
	require.NoError(t, err)
	sw.Clamp(reg)
	assert.Equal(t, 1, sw.State().Selected)
}

func imageOfSize(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}
