package live

import (
	"strconv"
	"strings"
)

// formatQuestionID returns the display id for a question row.
func formatQuestionID(row QuestionRow) string {
	if row.ID != "" {
		return row.ID
	}
	return formatIndex(row.Index)
}

// formatIndex formats a question index.
func formatIndex(index int) string {
	return "Q" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatQuestionText collapses whitespace and truncates question text.
func formatQuestionText(text string) string {
	return truncate(strings.Join(strings.Fields(text), " "), 80)
}

// formatAnswers joins answer choices for display.
func formatAnswers(answers []string) string {
	if len(answers) == 0 {
		return "-"
	}
	return truncate(strings.Join(answers, " / "), 40)
}

// formatKind renders the question category.
func formatKind(kind string) string {
	if kind == "" {
		return "-"
	}
	return kind
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
