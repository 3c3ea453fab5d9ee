package live

import "time"

// QuestionRow holds UI state for a single question.
type QuestionRow struct {
	Index   int
	ID      string
	Text    string
	Kind    string
	Answers []string
}

// State captures the live UI state for a day session.
type State struct {
	SessionID string
	Date      string
	StartedAt time.Time
	Busy      bool
	Loaded    bool
	Rows      []QuestionRow
	Cravings  int
	Error     string
	LastEvent string
}
