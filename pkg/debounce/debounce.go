// Package debounce holds the timing helpers behind text-driven
// re-queries: a trailing-edge debouncer and a stale-response guard.
package debounce

import (
	"sync"
	"sync/atomic"
	"time"
)

// Debouncer defers a function until a quiet period follows the latest
// trigger. Each Trigger cancels the previously scheduled run, so only
// the last one fires. Canceling the timer does not cancel work an
// earlier run already started; pair with a TokenGuard for that.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// TokenGuard hands out monotonically increasing request tokens. A
// response is applied only while its token is still the newest issued,
// so a slow call superseded by a newer one gets discarded instead of
// clobbering fresher state.
type TokenGuard struct {
	issued atomic.Uint64
}

// Next issues the token for a new request.
func (g *TokenGuard) Next() uint64 {
	return g.issued.Add(1)
}

// Current reports whether token is still the latest issued.
func (g *TokenGuard) Current(token uint64) bool {
	return g.issued.Load() == token
}
