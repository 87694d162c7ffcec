// Package mainloop runs every core state mutation on one dispatch goroutine.
package mainloop

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/gridterm/internal/logging"
)

// ErrStopped is returned by Run when the loop was stopped with Stop.
var ErrStopped = errors.New("main loop stopped")

// Loop is a FIFO of tasks drained by the goroutine calling Run.
// Post is safe from any goroutine; tasks never run concurrently.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	done    chan struct{}
	stopped bool
}

// New creates an idle loop.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post queues fn. Tasks posted after Stop are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Stop makes Run return once the task in progress finishes.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.stopped = true
	l.queue = nil
	close(l.done)
}

// Run drains the queue until ctx is cancelled or Stop is called.
// A panicking task is logged and does not take the loop down.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Debug().Msg("main loop running")

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return ErrStopped
		case <-l.wake:
		}

		for {
			fn, ok := l.next()
			if !ok {
				break
			}
			l.runTask(ctx, fn)
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped || len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

func (l *Loop) runTask(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().Interface("panic", r).Msg("main loop task panicked")
		}
	}()
	fn()
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}
