package project

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is the quiescence window for autosave. A burst of edits
// inside the window collapses into a single store write.
const DefaultDebounce = time.Second

// Autosaver persists project snapshots after edits settle. It is an
// external observer of the editor: callers invoke Notify after every
// state-changing operation and the Autosaver re-arms a cancellable timer.
// When the timer fires, the snapshot callback captures the current state
// and the result is upserted into the store.
//
// Store failures are logged and swallowed; the in-memory model remains
// authoritative for the session.
type Autosaver struct {
	debounce time.Duration
	snapshot func() Project
	store    Store
	logger   *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	closed  bool
}

// NewAutosaver creates an Autosaver with the given quiescence window.
// A non-positive debounce falls back to DefaultDebounce.
func NewAutosaver(debounce time.Duration, snapshot func() Project, store Store, logger *zap.Logger) *Autosaver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Autosaver{
		debounce: debounce,
		snapshot: snapshot,
		store:    store,
		logger:   logger,
	}
}

// Notify records that the state changed, re-arming the debounce timer. A
// timer already pending is superseded, so rapid edits produce one save.
func (a *Autosaver) Notify() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.debounce, a.fire)
}

// Flush saves immediately when a save is pending, cancelling the timer
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	pending := a.pending
	a.pending = false
	a.mu.Unlock()

	if pending {
		a.save()
	}
}

// Close cancels any pending timer and performs one final save if an edit
// was still waiting for its window. The Autosaver must not be notified
// afterwards.
func (a *Autosaver) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	pending := a.pending
	a.pending = false
	a.mu.Unlock()

	if pending {
		a.save()
	}
	return nil
}

// fire runs on timer expiry
func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed || !a.pending {
		a.mu.Unlock()
		return
	}
	a.pending = false
	a.timer = nil
	a.mu.Unlock()

	a.save()
}

func (a *Autosaver) save() {
	p := a.snapshot()
	if err := a.store.Upsert(p); err != nil {
		a.logger.Warn("autosave failed, in-memory state remains authoritative",
			zap.String("project_id", p.ID),
			zap.Error(err))
		return
	}
	a.logger.Debug("autosaved project", zap.String("project_id", p.ID))
}
