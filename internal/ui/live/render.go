package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the session header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "Day " + state.Date
	if state.SessionID != "" {
		line += " | Session: " + shortID(state.SessionID)
	}
	if !state.StartedAt.IsZero() {
		line += " | Open: " + now.Sub(state.StartedAt).Round(time.Second).String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the counts line.
func renderSummary(state State, noColor bool) string {
	status := "ready"
	if state.Busy {
		status = "loading"
	} else if !state.Loaded {
		status = "not loaded"
	}
	line := "Questions: " + fmtInt(len(state.Rows)) +
		" Cravings: " + fmtInt(state.Cravings) +
		" Status: " + status
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderError renders the last load error.
func renderError(state State, noColor bool) string {
	if state.Error == "" {
		return ""
	}
	return stylize("Error: "+state.Error, noColor, lipgloss.Color("196"))
}

// renderFooter renders the last event and key help.
func renderFooter(state State, noColor bool) string {
	line := "r reload | q quit"
	if state.LastEvent != "" {
		line = "Last event: " + state.LastEvent + " | " + line
	}
	return stylize(line, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
