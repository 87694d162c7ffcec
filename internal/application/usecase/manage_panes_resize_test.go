package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridterm/internal/domain/entity"
)

func ratioOf(t *testing.T, ws *entity.Workspace, id entity.NodeID) float64 {
	t.Helper()
	n, ok := ws.Tree.Node(id)
	require.True(t, ok)
	return n.Ratio
}

func TestManagePanesUseCase_Resize_Errors(t *testing.T) {
	uc := NewManagePanesUseCase(nil, nil)
	ctx := context.Background()

	err := uc.Resize(ctx, nil, entity.NodeID{}, ResizeIncreaseDown, 5, 10)
	assert.ErrorIs(t, err, ErrWorkspaceRequired)

	ws := entity.NewWorkspace(1, "a")
	err = uc.Resize(ctx, ws, entity.NodeID{}, ResizeIncreaseDown, 5, 10)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	// A lone leaf has no divider.
	err = uc.Resize(ctx, ws, ws.Tree.Root(), ResizeIncreaseDown, 5, 10)
	assert.ErrorIs(t, err, ErrNothingToResize)
}

func TestManagePanesUseCase_Resize_VerticalDividerMove(t *testing.T) {
	uc := NewManagePanesUseCase(nil, nil)
	ctx := context.Background()

	ws := entity.NewWorkspace(1, "top")
	root := ws.Tree.Root()
	_, bottom, err := ws.Tree.SplitLeaf(root, entity.Vertical, "bottom")
	require.NoError(t, err)

	// Moving divider down increases the first child's ratio.
	require.NoError(t, uc.Resize(ctx, ws, bottom, ResizeIncreaseDown, 5.0, 10.0))
	assert.InDelta(t, 0.55, ratioOf(t, ws, root), 1e-9)

	// Moving divider up decreases the first child's ratio.
	require.NoError(t, uc.Resize(ctx, ws, bottom, ResizeIncreaseUp, 5.0, 10.0))
	assert.InDelta(t, 0.5, ratioOf(t, ws, root), 1e-9)

	// A horizontal move finds no horizontal split.
	err = uc.Resize(ctx, ws, bottom, ResizeIncreaseLeft, 5.0, 10.0)
	assert.ErrorIs(t, err, ErrNothingToResize)
}

func TestManagePanesUseCase_Resize_ClampsToMinimum(t *testing.T) {
	uc := NewManagePanesUseCase(nil, nil)
	ctx := context.Background()

	ws := entity.NewWorkspace(1, "left")
	root := ws.Tree.Root()
	left, _, err := ws.Tree.SplitLeaf(root, entity.Horizontal, "right")
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.NoError(t, uc.Resize(ctx, ws, left, ResizeIncreaseLeft, 10, 15))
	}
	assert.InDelta(t, 0.15, ratioOf(t, ws, root), 1e-9)
}

func TestManagePanesUseCase_Resize_SmartDirection(t *testing.T) {
	uc := NewManagePanesUseCase(nil, nil)
	ctx := context.Background()

	ws := entity.NewWorkspace(1, "left")
	root := ws.Tree.Root()
	left, right, err := ws.Tree.SplitLeaf(root, entity.Horizontal, "right")
	require.NoError(t, err)

	// Growing the first child moves the divider right.
	require.NoError(t, uc.Resize(ctx, ws, left, ResizeIncrease, 10, 10))
	assert.InDelta(t, 0.6, ratioOf(t, ws, root), 1e-9)

	// Growing the second child moves it back left.
	require.NoError(t, uc.Resize(ctx, ws, right, ResizeIncrease, 10, 10))
	assert.InDelta(t, 0.5, ratioOf(t, ws, root), 1e-9)

	require.NoError(t, uc.Resize(ctx, ws, right, ResizeDecrease, 10, 10))
	assert.InDelta(t, 0.6, ratioOf(t, ws, root), 1e-9)
}

func TestManagePanesUseCase_Resize_WalksUpToMatchingAxis(t *testing.T) {
	uc := NewManagePanesUseCase(nil, nil)
	ctx := context.Background()

	ws := entity.NewWorkspace(1, "a")
	root := ws.Tree.Root()
	_, right, err := ws.Tree.SplitLeaf(root, entity.Horizontal, "b")
	require.NoError(t, err)
	top, _, err := ws.Tree.SplitLeaf(right, entity.Vertical, "c")
	require.NoError(t, err)

	require.NoError(t, uc.Resize(ctx, ws, top, ResizeIncreaseLeft, 5, 10))
	assert.InDelta(t, 0.45, ratioOf(t, ws, root), 1e-9)
	assert.InDelta(t, 0.5, ratioOf(t, ws, right), 1e-9)
}

func TestManagePanesUseCase_SetSplitRatio(t *testing.T) {
	uc := NewManagePanesUseCase(nil, nil)
	ctx := context.Background()

	ws := entity.NewWorkspace(1, "a")
	root := ws.Tree.Root()
	first, _, err := ws.Tree.SplitLeaf(root, entity.Horizontal, "b")
	require.NoError(t, err)

	require.NoError(t, uc.SetSplitRatio(ctx, SetSplitRatioInput{Workspace: ws, Split: root, Ratio: 0.333, MinPanePercent: 10}))
	assert.InDelta(t, 0.33, ratioOf(t, ws, root), 1e-9)

	require.NoError(t, uc.SetSplitRatio(ctx, SetSplitRatioInput{Workspace: ws, Split: root, Ratio: 0.99, MinPanePercent: 10}))
	assert.InDelta(t, 0.9, ratioOf(t, ws, root), 1e-9)

	err = uc.SetSplitRatio(ctx, SetSplitRatioInput{Workspace: ws, Split: first, Ratio: 0.5})
	assert.ErrorIs(t, err, ErrNodeNotFound)
}
