package catalog

import (
	"context"
	"sync"
	"time"

	"movie-search-service/internal/models"
)

// DefaultDebounce is the quiet period after the last input change
// before a search actually executes.
const DefaultDebounce = 600 * time.Millisecond

// Listener receives the outcome of debounced searches. OnError leaves
// any previously delivered results untouched; it is the listener's
// choice whether to keep rendering them next to the error.
type Listener interface {
	OnLoading(loading bool)
	OnResults(result models.SearchResult)
	OnError(err error)
}

// Controller coalesces rapid Submit calls into a single engine
// invocation after a quiet period. A monotonic request token guards
// against a slow stale response clobbering a newer one, and Stop
// guarantees no listener callback fires afterwards.
type Controller struct {
	engine   *Engine
	listener Listener
	delay    time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	token   uint64
	stopped bool
}

// NewController creates a debounced query controller forwarding to the
// given engine. A non-positive delay falls back to DefaultDebounce.
func NewController(engine *Engine, listener Listener, delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Controller{
		engine:   engine,
		listener: listener,
		delay:    delay,
	}
}

// Submit schedules a search for the given input, discarding any search
// still pending from earlier submissions within the debounce window.
func (c *Controller) Submit(query string, page, pageSize int, filters models.FilterOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}

	c.token++
	token := c.token
	c.timer = time.AfterFunc(c.delay, func() {
		c.run(token, query, page, pageSize, filters)
	})
}

// Stop cancels any pending search and invalidates in-flight responses.
// Safe to call more than once.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.token++
}

func (c *Controller) run(token uint64, query string, page, pageSize int, filters models.FilterOptions) {
	if !c.current(token) {
		return
	}
	c.listener.OnLoading(true)
	// The loading flag is paired unconditionally so it can never
	// stick on, even when the outcome below is discarded as stale.
	defer c.listener.OnLoading(false)

	result, err := c.engine.Search(context.Background(), query, page, pageSize, filters)

	// A newer submission may have superseded this one while the
	// search was in flight; its outcome must not be applied.
	if !c.current(token) {
		return
	}

	if err != nil {
		c.listener.OnError(err)
		return
	}
	c.listener.OnResults(result)
}

func (c *Controller) current(token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.stopped && token == c.token
}
