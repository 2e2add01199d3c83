package internal

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAutosaveScheduler_DebounceBurst(t *testing.T) {
	var saves atomic.Int32
	sched := NewAutosaveScheduler(50*time.Millisecond, time.Hour, func() {
		saves.Add(1)
	})
	defer sched.Stop()

	// A burst of edits closer together than the debounce window.
	for i := 0; i < 5; i++ {
		sched.NoteEdit()
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := saves.Load(); got != 1 {
		t.Errorf("burst of edits produced %d saves, want exactly 1", got)
	}
}

func TestAutosaveScheduler_SeparateBursts(t *testing.T) {
	var saves atomic.Int32
	sched := NewAutosaveScheduler(30*time.Millisecond, time.Hour, func() {
		saves.Add(1)
	})
	defer sched.Stop()

	sched.NoteEdit()
	time.Sleep(100 * time.Millisecond)
	sched.NoteEdit()
	time.Sleep(100 * time.Millisecond)

	if got := saves.Load(); got != 2 {
		t.Errorf("two separated bursts produced %d saves, want 2", got)
	}
}

func TestAutosaveScheduler_PeriodicFires(t *testing.T) {
	var saves atomic.Int32
	sched := NewAutosaveScheduler(time.Hour, 30*time.Millisecond, func() {
		saves.Add(1)
	})
	sched.Start()
	defer sched.Stop()

	time.Sleep(110 * time.Millisecond)

	if got := saves.Load(); got < 2 {
		t.Errorf("periodic timer fired %d times in ~3 intervals, want at least 2", got)
	}
}

func TestAutosaveScheduler_StopCancels(t *testing.T) {
	var saves atomic.Int32
	sched := NewAutosaveScheduler(30*time.Millisecond, 30*time.Millisecond, func() {
		saves.Add(1)
	})
	sched.Start()
	sched.NoteEdit()
	sched.Stop()

	time.Sleep(100 * time.Millisecond)

	if got := saves.Load(); got != 0 {
		t.Errorf("saves after Stop() = %d, want 0", got)
	}
}

func TestAutosaveScheduler_StartTwice(t *testing.T) {
	var saves atomic.Int32
	sched := NewAutosaveScheduler(time.Hour, 40*time.Millisecond, func() {
		saves.Add(1)
	})
	sched.Start()
	sched.Start()
	defer sched.Stop()

	time.Sleep(100 * time.Millisecond)

	// One ticker, not two.
	if got := saves.Load(); got > 3 {
		t.Errorf("double Start() produced %d saves in ~2 intervals", got)
	}
}
