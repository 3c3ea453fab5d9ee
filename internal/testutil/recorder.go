package testutil

import (
	"sync"

	"notoday/internal/observable"
)

// ChangeRecorder collects property notifications for assertions.
type ChangeRecorder struct {
	mu      sync.Mutex
	changes []observable.Change
}

// Record appends a change; it is usable directly as an observable.Observer.
func (r *ChangeRecorder) Record(change observable.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
}

// Changes returns a copy of every recorded change in arrival order.
func (r *ChangeRecorder) Changes() []observable.Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]observable.Change(nil), r.changes...)
}

// Names returns the recorded property names in arrival order.
func (r *ChangeRecorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.changes))
	for _, change := range r.changes {
		names = append(names, change.Name)
	}
	return names
}

// Count returns how many changes were recorded for name.
func (r *ChangeRecorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, change := range r.changes {
		if change.Name == name {
			count++
		}
	}
	return count
}

// Last returns the most recent change for name.
func (r *ChangeRecorder) Last(name string) (observable.Change, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.changes) - 1; i >= 0; i-- {
		if r.changes[i].Name == name {
			return r.changes[i], true
		}
	}
	return observable.Change{}, false
}

// Reset clears recorded changes.
func (r *ChangeRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = nil
}
