package live

import "notoday/internal/observable"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventSessionStart signals that a day screen was opened.
	EventSessionStart EventKind = iota
	// EventChange delivers a property notification from the view model.
	EventChange
	// EventSessionEnd signals that the session is over.
	EventSessionEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	SessionID string
	Date      string
	Change    observable.Change
}
