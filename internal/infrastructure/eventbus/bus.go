// Package eventbus delivers typed application events to named subscribers.
package eventbus

import (
	"context"
	"sync"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/logging"
)

type subscription struct {
	id uint64
	fn func(port.Event)
}

// Bus is a synchronous publish/subscribe hub keyed by event name.
// Handlers run on the publishing goroutine, in subscription order.
type Bus struct {
	ctx    context.Context
	mu     sync.RWMutex
	subs   map[string][]subscription
	nextID uint64
}

var (
	_ port.EventPublisher  = (*Bus)(nil)
	_ port.EventSubscriber = (*Bus)(nil)
)

// New creates an empty bus. ctx carries the logger.
func New(ctx context.Context) *Bus {
	return &Bus{
		ctx:  ctx,
		subs: make(map[string][]subscription),
	}
}

// Subscribe registers fn for events named name.
func (b *Bus) Subscribe(name string, fn func(port.Event)) func() {
	if fn == nil {
		return func() {}
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(name, id) })
	}
}

func (b *Bus) unsubscribe(name string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[name]
	for i, s := range subs {
		if s.id == id {
			b.subs[name] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[name]) == 0 {
		delete(b.subs, name)
	}
}

// Publish calls every handler subscribed to ev's name.
// Handlers may publish or unsubscribe without deadlocking.
func (b *Bus) Publish(ev port.Event) {
	if ev == nil {
		return
	}
	name := ev.EventName()

	b.mu.RLock()
	handlers := append([]subscription(nil), b.subs[name]...)
	b.mu.RUnlock()

	log := logging.FromContext(b.ctx)
	if len(handlers) == 0 {
		log.Trace().Str("event", name).Msg("event without subscribers")
		return
	}
	log.Trace().Str("event", name).Int("subscribers", len(handlers)).Msg("publishing event")
	for _, h := range handlers {
		h.fn(ev)
	}
}

// Subscribers returns the number of handlers registered for name.
func (b *Bus) Subscribers(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[name])
}
