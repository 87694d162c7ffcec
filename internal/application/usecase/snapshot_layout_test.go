package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/port/mocks"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/domain/repository"
	repomocks "github.com/bnema/gridterm/internal/domain/repository/mocks"
)

func fixedID() string { return "layout-1" }

func TestSnapshotLayoutUseCase_SaveDefaultsName(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	sessions := mocks.NewMockSessionSpawner(t)
	uc := usecase.NewSnapshotLayoutUseCase(repo, sessions, nil, fixedID)

	reg := newRegistry("s1", "s2")
	_, _, err := reg.At(0).Tree.SplitLeaf(reg.At(0).Tree.Root(), entity.Vertical, "s3")
	require.NoError(t, err)
	require.NoError(t, reg.Activate(1))

	sessions.EXPECT().WorkingDirectory(entity.SessionID("s1")).Return("/one", nil)
	sessions.EXPECT().WorkingDirectory(entity.SessionID("s2")).Return("", errors.New("exited"))
	sessions.EXPECT().WorkingDirectory(entity.SessionID("s3")).Return("/three", nil)

	var saved *entity.LayoutSnapshot
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, snap *entity.LayoutSnapshot) { saved = snap }).
		Return(nil)

	snap, err := uc.Save(ctx, usecase.SaveLayoutInput{Registry: reg, Name: "  ", Focused: "s3"})
	require.NoError(t, err)
	require.Same(t, snap, saved)

	assert.Equal(t, usecase.DefaultLayoutName, snap.Name)
	assert.Equal(t, entity.LayoutSnapshotID("layout-1"), snap.ID)
	assert.Equal(t, 1, snap.ActiveIndex)
	assert.Equal(t, 3, snap.PaneCount())

	root := snap.Workspaces[0].Root
	assert.Equal(t, "vertical", root.Orientation)
	assert.Equal(t, "/one", root.First.WorkingDirectory)
	assert.True(t, root.Second.Focused)
	assert.Empty(t, snap.Workspaces[1].Root.WorkingDirectory)
}

func TestSnapshotLayoutUseCase_Restore(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	sessions := mocks.NewMockSessionSpawner(t)
	uc := usecase.NewSnapshotLayoutUseCase(repo, sessions, defaultConfig(t, false), fixedID)
	dir := t.TempDir()

	repo.EXPECT().FindByName(mock.Anything, "work").Return(&entity.LayoutSnapshot{
		Version: entity.LayoutSnapshotVersion,
		Name:    "work",
		Workspaces: []entity.WorkspaceSnapshot{
			{Index: 2, Root: &entity.PaneNodeSnapshot{WorkingDirectory: "/does/not/exist"}},
			{Index: 5, Root: &entity.PaneNodeSnapshot{
				Orientation: "horizontal",
				Ratio:       0.25,
				First:       &entity.PaneNodeSnapshot{WorkingDirectory: dir},
				Second:      &entity.PaneNodeSnapshot{WorkingDirectory: dir, Focused: true},
			}},
		},
		ActiveIndex: 1,
		NextIndex:   3,
	}, nil)

	next := 0
	sessions.EXPECT().Spawn(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.SpawnRequest) (entity.SessionID, error) {
			next++
			if next == 1 {
				assert.Empty(t, req.WorkingDirectory, "missing directories are dropped")
			} else {
				assert.Equal(t, dir, req.WorkingDirectory)
			}
			return entity.SessionID([]string{"", "a", "b", "c"}[next]), nil
		}).Times(3)

	out, err := uc.Restore(ctx, "work")
	require.NoError(t, err)

	reg := out.Registry
	require.Equal(t, 2, reg.Len())
	assert.Equal(t, 1, reg.Active())
	assert.Equal(t, 6, reg.PeekNextIndex(), "next index stays past every restored index")

	ws := reg.At(1)
	assert.Equal(t, 5, ws.Index)
	assert.Equal(t, []entity.SessionID{"b", "c"}, ws.Tree.Sessions())
	root, _ := ws.Tree.Node(ws.Tree.Root())
	assert.InDelta(t, 0.25, root.Ratio, 1e-9)

	assert.Same(t, ws, out.FocusWorkspace)
	focused, _ := ws.Tree.Node(out.FocusLeaf)
	assert.Equal(t, entity.SessionID("c"), focused.Session)
}

func TestSnapshotLayoutUseCase_RestoreFocusFallsBackToActiveWorkspace(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	sessions := mocks.NewMockSessionSpawner(t)
	uc := usecase.NewSnapshotLayoutUseCase(repo, sessions, nil, fixedID)

	repo.EXPECT().FindByName(mock.Anything, usecase.DefaultLayoutName).Return(&entity.LayoutSnapshot{
		Version: entity.LayoutSnapshotVersion,
		Workspaces: []entity.WorkspaceSnapshot{
			{Index: 1, Root: &entity.PaneNodeSnapshot{Focused: true}},
			{Index: 2, Root: &entity.PaneNodeSnapshot{}},
		},
		ActiveIndex: 7,
	}, nil)
	sessions.EXPECT().Spawn(mock.Anything, mock.Anything).Return(entity.SessionID("x"), nil).Times(2)

	out, err := uc.Restore(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 0, out.Registry.Active(), "out-of-range active index is clamped")
	assert.Same(t, out.Registry.At(0), out.FocusWorkspace)
	assert.Equal(t, out.Registry.At(0).Tree.Root(), out.FocusLeaf)
}

func TestSnapshotLayoutUseCase_RestoreRollsBackOnSpawnFailure(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	sessions := mocks.NewMockSessionSpawner(t)
	uc := usecase.NewSnapshotLayoutUseCase(repo, sessions, nil, fixedID)
	boom := errors.New("pty exhausted")

	repo.EXPECT().FindByName(mock.Anything, "work").Return(&entity.LayoutSnapshot{
		Version: entity.LayoutSnapshotVersion,
		Workspaces: []entity.WorkspaceSnapshot{
			{Index: 1, Root: &entity.PaneNodeSnapshot{}},
			{Index: 2, Root: &entity.PaneNodeSnapshot{
				Orientation: "vertical",
				First:       &entity.PaneNodeSnapshot{},
				Second:      &entity.PaneNodeSnapshot{},
			}},
		},
	}, nil)

	sessions.EXPECT().Spawn(mock.Anything, mock.Anything).Return(entity.SessionID("a"), nil).Once()
	sessions.EXPECT().Spawn(mock.Anything, mock.Anything).Return(entity.SessionID("b"), nil).Once()
	sessions.EXPECT().Spawn(mock.Anything, mock.Anything).Return(entity.SessionID(""), boom).Once()
	sessions.EXPECT().Terminate(mock.Anything, entity.SessionID("a")).Return(nil)
	sessions.EXPECT().Terminate(mock.Anything, entity.SessionID("b")).Return(nil)

	_, err := uc.Restore(ctx, "work")
	assert.ErrorIs(t, err, boom)
}

func TestSnapshotLayoutUseCase_LoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		snap    *entity.LayoutSnapshot
		findErr error
		wantErr error
	}{
		{
			name:    "missing",
			findErr: repository.ErrLayoutNotFound,
			wantErr: repository.ErrLayoutNotFound,
		},
		{
			name:    "nil without error",
			wantErr: repository.ErrLayoutNotFound,
		},
		{
			name:    "newer version",
			snap:    &entity.LayoutSnapshot{Version: entity.LayoutSnapshotVersion + 1},
			wantErr: usecase.ErrVersionMismatch,
		},
		{
			name:    "no workspace",
			snap:    &entity.LayoutSnapshot{Version: entity.LayoutSnapshotVersion},
			wantErr: usecase.ErrEmptyLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockLayoutRepository(t)
			uc := usecase.NewSnapshotLayoutUseCase(repo, nil, nil, fixedID)
			repo.EXPECT().FindByName(mock.Anything, "x").Return(tt.snap, tt.findErr)

			_, err := uc.Load(testContext(), "x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSnapshotLayoutUseCase_ListAndDelete(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	uc := usecase.NewSnapshotLayoutUseCase(repo, nil, nil, fixedID)

	repo.EXPECT().List(mock.Anything).Return([]*entity.LayoutSnapshot{{Name: "a"}, {Name: "b"}}, nil)
	repo.EXPECT().Delete(mock.Anything, "a").Return(nil)
	repo.EXPECT().Delete(mock.Anything, "zzz").Return(repository.ErrLayoutNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, uc.Delete(ctx, "a"))
	assert.ErrorIs(t, uc.Delete(ctx, "zzz"), repository.ErrLayoutNotFound)
}
