package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T, l *Loop) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	t.Cleanup(cancel)
	return cancel, errc
}

func TestLoop_RunsTasksInOrder(t *testing.T) {
	l := New()
	runLoop(t, l)

	var got []int
	done := make(chan struct{})
	for i := range 5 {
		l.Post(func() { got = append(got, i) })
	}
	l.Post(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks did not run")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoop_PostFromManyGoroutines(t *testing.T) {
	l := New()
	runLoop(t, l)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	count := 0
	for range n {
		go l.Post(func() {
			count++
			wg.Done()
		})
	}

	waited := make(chan struct{})
	go func() { wg.Wait(); close(waited) }()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks did not run")
	}
	assert.Equal(t, n, count)
}

func TestLoop_StopEndsRunAndDropsLaterPosts(t *testing.T) {
	l := New()
	_, errc := runLoop(t, l)

	l.Stop()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrStopped)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}

	l.Post(func() {})
	assert.Zero(t, l.Pending())
}

func TestLoop_CancelEndsRun(t *testing.T) {
	l := New()
	cancel, errc := runLoop(t, l)

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestLoop_SurvivesPanickingTask(t *testing.T) {
	l := New()
	runLoop(t, l)

	done := make(chan struct{})
	l.Post(func() { panic("boom") })
	l.Post(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "loop stopped after panic")
	}
}
