package live

import (
	"fmt"

	"notoday/internal/day"
	"notoday/internal/observable"
	"notoday/internal/question"
	"notoday/internal/viewmodel"
)

// Reduce applies a property notification to the UI state.
func Reduce(state State, change observable.Change) State {
	switch change.Name {
	case day.PropertyQuestions:
		questions, _ := change.Value.([]question.Question)
		state.Rows = rowsFromQuestions(questions)
		state.Loaded = true
		state.Error = ""
	case day.PropertyHowManyCravings:
		cravings, _ := change.Value.(int)
		state.Cravings = cravings
	case viewmodel.PropertyIsBusy:
		busy, _ := change.Value.(bool)
		state.Busy = busy
	case viewmodel.PropertyDate:
		date, _ := change.Value.(string)
		state.Date = date
	case viewmodel.PropertyLastError:
		if err, ok := change.Value.(error); ok && err != nil {
			state.Error = err.Error()
		} else {
			state.Error = ""
		}
	}
	if message := formatLastEvent(state, change); message != "" {
		state.LastEvent = message
	}
	return state
}

// rowsFromQuestions converts loaded questions into display rows.
func rowsFromQuestions(questions []question.Question) []QuestionRow {
	rows := make([]QuestionRow, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, QuestionRow{
			Index:   i,
			ID:      q.ID,
			Text:    q.Prompt,
			Kind:    q.Kind,
			Answers: append([]string(nil), q.Answers...),
		})
	}
	return rows
}

// formatLastEvent creates a short footer message for the change.
func formatLastEvent(state State, change observable.Change) string {
	switch change.Name {
	case day.PropertyQuestions:
		return fmt.Sprintf("loaded %d questions", len(state.Rows))
	case viewmodel.PropertyIsBusy:
		if state.Busy {
			return "loading..."
		}
	case viewmodel.PropertyLastError:
		if state.Error != "" {
			return "load failed"
		}
	case viewmodel.PropertyDate:
		return "date set to " + state.Date
	}
	return ""
}
