package internal

import (
	"sync"
	"time"
)

// Default autosave intervals.
const (
	DefaultDebounceInterval = 2 * time.Second
	DefaultPeriodicInterval = 30 * time.Second
)

// AutosaveScheduler coordinates the two save triggers around one idempotent
// save callback: an idle debounce restarted on every edit, and an independent
// periodic timer that fires regardless of idle state. Because the callback is
// idempotent (it no-ops when nothing changed), overlapping firings never
// double-write incorrectly.
type AutosaveScheduler struct {
	debounce time.Duration
	periodic time.Duration
	save     func()

	mu      sync.Mutex
	idle    *time.Timer
	ticker  *time.Ticker
	done    chan struct{}
	started bool
}

// NewAutosaveScheduler creates a scheduler around save. Zero intervals get
// the defaults; tests inject short ones.
func NewAutosaveScheduler(debounce, periodic time.Duration, save func()) *AutosaveScheduler {
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}
	if periodic <= 0 {
		periodic = DefaultPeriodicInterval
	}
	return &AutosaveScheduler{
		debounce: debounce,
		periodic: periodic,
		save:     save,
	}
}

// Start launches the periodic timer. Calling Start twice is a no-op.
func (a *AutosaveScheduler) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return
	}
	a.started = true
	a.ticker = time.NewTicker(a.periodic)
	a.done = make(chan struct{})

	go func(tick <-chan time.Time, done <-chan struct{}) {
		for {
			select {
			case <-tick:
				a.save()
			case <-done:
				return
			}
		}
	}(a.ticker.C, a.done)
}

// NoteEdit restarts the idle-save countdown. A burst of edits closer together
// than the debounce interval produces exactly one save at the end of the
// burst.
func (a *AutosaveScheduler) NoteEdit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.idle != nil {
		a.idle.Stop()
	}
	a.idle = time.AfterFunc(a.debounce, a.save)
}

// Stop cancels both timers. Pending saves that already fired still complete;
// no new ones are scheduled.
func (a *AutosaveScheduler) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.started {
		if a.idle != nil {
			a.idle.Stop()
			a.idle = nil
		}
		return
	}
	a.started = false
	if a.idle != nil {
		a.idle.Stop()
		a.idle = nil
	}
	a.ticker.Stop()
	close(a.done)
}
