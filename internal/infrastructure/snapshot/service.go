// Package snapshot autosaves the workspace layout.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

const defaultIntervalMs = 2000

// Service saves the layout a short while after it last changed.
// Capturing happens on the dispatch loop through post; the database write
// runs on its own goroutine.
type Service struct {
	snapshotUC *usecase.SnapshotLayoutUseCase
	provider   port.LayoutProvider
	post       func(func())
	interval   time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	dirty   bool
	ctx     context.Context
	cancel  context.CancelFunc
	writes  sync.WaitGroup
	stopped bool
}

// NewService creates an autosave service. A non-positive interval uses 2s.
func NewService(
	snapshotUC *usecase.SnapshotLayoutUseCase,
	provider port.LayoutProvider,
	post func(func()),
	intervalMs int,
) *Service {
	if intervalMs <= 0 {
		intervalMs = defaultIntervalMs
	}
	return &Service{
		snapshotUC: snapshotUC,
		provider:   provider,
		post:       post,
		interval:   time.Duration(intervalMs) * time.Millisecond,
	}
}

// Start enables saving.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("layout autosave started")
}

// MarkDirty signals that the layout changed and schedules a save,
// postponing one that is already scheduled.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.fire)
}

// Dirty reports whether a change has not been saved yet.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Service) fire() {
	s.mu.Lock()
	ctx := s.ctx
	stopped := s.stopped
	s.mu.Unlock()
	if ctx == nil || stopped {
		return
	}

	s.post(func() {
		if ctx.Err() != nil {
			return
		}
		snap, err := s.capture(ctx)
		if err != nil || snap == nil {
			return
		}
		s.writes.Add(1)
		go func() {
			defer s.writes.Done()
			if err := s.snapshotUC.Store(ctx, snap); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("failed to autosave layout")
				s.mu.Lock()
				s.dirty = true
				s.mu.Unlock()
			}
		}()
	})
}

// capture clears the dirty flag and captures the layout. Must run on the loop.
func (s *Service) capture(ctx context.Context) (*entity.LayoutSnapshot, error) {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	snap, err := s.provider.CaptureLayout(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to capture layout")
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return nil, err
	}
	return snap, nil
}

// SaveNow captures and stores the layout if it changed since the last save.
// Must run on the dispatch loop, or after the loop stopped.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}
	snap, err := s.capture(ctx)
	if err != nil || snap == nil {
		return err
	}
	return s.snapshotUC.Store(ctx, snap)
}

// Stop cancels pending saves, waits for writes in flight, then saves the
// final layout.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.writes.Wait()
	return s.SaveNow(ctx)
}
