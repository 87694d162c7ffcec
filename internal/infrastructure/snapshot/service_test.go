package snapshot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	repomocks "github.com/bnema/gridterm/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testProvider struct {
	calls atomic.Int32
	err   error
	empty bool
}

func (p *testProvider) CaptureLayout(context.Context) (*entity.LayoutSnapshot, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	if p.empty {
		return nil, nil
	}
	return &entity.LayoutSnapshot{
		Version:    entity.LayoutSnapshotVersion,
		Name:       usecase.DefaultLayoutName,
		Workspaces: []entity.WorkspaceSnapshot{{Index: 1, Root: &entity.PaneNodeSnapshot{}}},
	}, nil
}

func runNow(fn func()) { fn() }

func newService(t *testing.T, provider *testProvider, intervalMs int) (*Service, *repomocks.MockLayoutRepository) {
	t.Helper()
	repo := repomocks.NewMockLayoutRepository(t)
	uc := usecase.NewSnapshotLayoutUseCase(repo, nil, nil, func() string { return "id" })
	return NewService(uc, provider, runNow, intervalMs), repo
}

func TestService_MarkDirtyDebouncesIntoOneSave(t *testing.T) {
	provider := &testProvider{}
	svc, repo := newService(t, provider, 20)
	saved := make(chan struct{}, 4)
	repo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		Run(func(context.Context, *entity.LayoutSnapshot) { saved <- struct{}{} }).
		Return(nil).
		Once()

	svc.Start(context.Background())
	for range 5 {
		svc.MarkDirty()
	}

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("layout was not saved")
	}
	require.NoError(t, svc.Stop(context.Background()))

	assert.Equal(t, int32(1), provider.calls.Load())
	assert.False(t, svc.Dirty())
}

func TestService_SaveNowSkipsCleanLayout(t *testing.T) {
	provider := &testProvider{}
	svc, _ := newService(t, provider, 0)
	svc.Start(context.Background())

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.Zero(t, provider.calls.Load())
}

func TestService_StopSavesPendingChange(t *testing.T) {
	provider := &testProvider{}
	svc, repo := newService(t, provider, int(time.Hour/time.Millisecond))
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	svc.Start(context.Background())
	svc.MarkDirty()
	require.NoError(t, svc.Stop(context.Background()))

	assert.False(t, svc.Dirty())
	svc.MarkDirty()
	assert.False(t, svc.Dirty(), "changes after stop are ignored")
}

func TestService_StopSkipsEmptyCapture(t *testing.T) {
	provider := &testProvider{empty: true}
	// The repository mock fails the test on any Save call.
	svc, _ := newService(t, provider, int(time.Hour/time.Millisecond))

	svc.Start(context.Background())
	svc.MarkDirty()
	require.NoError(t, svc.Stop(context.Background()))

	assert.Equal(t, int32(1), provider.calls.Load())
	assert.False(t, svc.Dirty())
}

func TestService_CaptureFailureKeepsDirty(t *testing.T) {
	boom := errors.New("no registry")
	provider := &testProvider{err: boom}
	svc, _ := newService(t, provider, int(time.Hour/time.Millisecond))

	svc.Start(context.Background())
	svc.MarkDirty()

	err := svc.SaveNow(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, svc.Dirty())
}

func TestService_StoreFailureIsReturned(t *testing.T) {
	provider := &testProvider{}
	svc, repo := newService(t, provider, int(time.Hour/time.Millisecond))
	dbErr := errors.New("disk full")
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(dbErr).Once()

	svc.Start(context.Background())
	svc.MarkDirty()
	assert.ErrorIs(t, svc.SaveNow(context.Background()), dbErr)
}
