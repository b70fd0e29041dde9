// Package search provides debounced search-as-you-type for the menu.
//
// The operator's keystrokes arrive far faster than the POS service should
// be queried. A Debouncer holds each lookup until a quiet period has
// passed; every new keystroke supersedes the pending one, and an owning
// view cancels outstanding work on its way out.
package search

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into one callback after a quiet
// period. Safe for concurrent use.
type Debouncer struct {
	quiet time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn to run once the quiet period elapses with no further
// triggers. A pending fn is superseded, never run twice. fn runs on its own
// goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels any pending callback and rejects further triggers. Called
// when the owning view goes away.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
