// Package debounce provides the two guards callers of live search need:
// a cancellable quiet-window timer that coalesces keystroke bursts, and a
// generation token that keeps a stale asynchronous result from overwriting a
// newer one when completions arrive out of order.
package debounce

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultWindow is the quiet window between the last trigger and the call.
const DefaultWindow = 300 * time.Millisecond

// Debouncer runs a function only after its window has passed without another
// Trigger. Each Trigger cancels the pending call.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn after the quiet window, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending call. Safe to call on teardown regardless of state.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Guard hands out request-generation tokens. A completion should only be
// applied while its token is still the latest one issued.
type Guard struct {
	gen atomic.Uint64
}

// Next invalidates all outstanding tokens and returns a fresh one.
func (g *Guard) Next() uint64 {
	return g.gen.Add(1)
}

// Latest reports whether token is still the most recently issued.
func (g *Guard) Latest(token uint64) bool {
	return g.gen.Load() == token
}
