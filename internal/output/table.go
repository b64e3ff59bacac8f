package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/todowatch/internal/urgency"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Urgency colors: red for overdue, orange for due soon, dim for the rest.
	urgencyStyles = map[urgency.Category]lipgloss.Style{
		urgency.Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		urgency.DueSoon: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		urgency.NotYet:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	urgencyStyles = map[urgency.Category]lipgloss.Style{}
}

// Table renders scan results as a formatted table.
func Table(w io.Writer, items []Item) {
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "No TODOs found.")
		return
	}

	// Calculate column widths.
	const pad = 2
	urgW, dueW, textW := 9, 12, 6
	for _, it := range items {
		urgW = max(urgW, len(it.Urgency.String())+pad)
		textW = max(textW, min(len(it.Text)+pad, 50)) //nolint:mnd // max text column width
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %s", urgW, "URGENCY", dueW, "DUE", textW, "TODO", "LOCATION")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, it := range items {
		text := it.Text
		const maxText = 48
		if len(text) > maxText {
			text = text[:maxText-3] + "..."
		}
		location := dimStyle.Render(it.Source())

		row := fmt.Sprintf("%s %-*s %-*s %s",
			padRight(styledUrgency(it.Urgency), urgW),
			dueW, it.Due,
			textW, text,
			location)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// padRight pads s with spaces to the given visible width, accounting for
// ANSI escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// styledUrgency renders the category using its color, or plain when colors
// are disabled.
func styledUrgency(c urgency.Category) string {
	if st, ok := urgencyStyles[c]; ok {
		return st.Render(c.String())
	}
	return c.String()
}
