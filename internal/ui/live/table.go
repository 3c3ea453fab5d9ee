package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the column layout for an 80 column terminal.
func defaultColumns() []table.Column {
	return columnsForWidth(80)
}

// columnsForWidth sizes the question column to the terminal width.
func columnsForWidth(width int) []table.Column {
	const idWidth, kindWidth, answersWidth = 12, 8, 24
	textWidth := width - idWidth - kindWidth - answersWidth - 8
	if textWidth < 20 {
		textWidth = 20
	}
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Question", Width: textWidth},
		{Title: "Kind", Width: kindWidth},
		{Title: "Answers", Width: answersWidth},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatQuestionID(row),
			formatQuestionText(row.Text),
			formatKind(row.Kind),
			formatAnswers(row.Answers),
		})
	}
	return rows
}
