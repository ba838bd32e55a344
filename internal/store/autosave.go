package store

import (
	"sync"
	"time"
)

// Autosave coalesces a burst of rapid edits into a single write: each Touch
// restarts the countdown, and only the state present when the window closes
// is persisted. Intermediate states are never written. The window is a
// deliberate trade-off between write volume and the small loss window on an
// abrupt exit; Flush on shutdown closes that window.
type Autosave struct {
	delay time.Duration
	save  func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewAutosave builds a debouncer invoking save after delay of quiet time.
// A non-positive delay makes every Touch save immediately.
func NewAutosave(delay time.Duration, save func()) *Autosave {
	return &Autosave{delay: delay, save: save}
}

// Touch notes an edit and (re)starts the countdown.
func (a *Autosave) Touch() {
	if a == nil || a.save == nil {
		return
	}
	if a.delay <= 0 {
		a.save()
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.save)
}

// Flush saves immediately if a write is pending.
func (a *Autosave) Flush() {
	if a == nil || a.save == nil {
		return
	}
	a.mu.Lock()
	pending := a.timer != nil && a.timer.Stop()
	a.timer = nil
	a.mu.Unlock()
	if pending {
		a.save()
	}
}

// Stop discards any pending write.
func (a *Autosave) Stop() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
