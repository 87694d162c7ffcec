package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks: while a task for a key is queued,
// posting again only replaces the callback, and the latest one runs once.
type Coalescer struct {
	mu        sync.Mutex
	latest    map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer posting through post, usually Loop.Post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		latest: make(map[string]func()),
		post:   post,
	}
}

// Post schedules fn under key, replacing a callback still waiting for that key.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if queued {
		return
	}
	c.post(func() { c.flush(key) })
}

func (c *Coalescer) flush(key string) {
	c.mu.Lock()
	fn := c.latest[key]
	delete(c.latest, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Pending reports whether a task for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.latest[key]
	return ok
}

// Destroy drops all waiting work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.latest = map[string]func(){}
	c.mu.Unlock()
}
