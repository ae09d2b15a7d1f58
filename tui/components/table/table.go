// Package table provides styled lipgloss tables for list views.
package table

import (
	"strings"

	"github.com/MrWheatley/hud-manager/tui/theme"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// SimpleTable creates a basic bordered table with headers and rows.
func SimpleTable(headers []string, rows [][]string) string {
	t := theme.DefaultTheme

	table := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return t.Header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, r := range rows {
		table = table.Row(r...)
	}

	return table.String()
}

// StatusTable creates a borderless two-column table for label/value pairs.
func StatusTable(items [][]string) string {
	t := theme.DefaultTheme

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, item := range items {
		if len(item) >= 2 {
			table = table.Row(t.Muted.Render(item[0]+":"), item[1])
		}
	}

	return table.String()
}

// SelectableTable creates a table for selection interfaces. The selection
// indicator is rendered to the left of the table, outside the border.
func SelectableTable(headers []string, rows [][]string, selectedIndex int) string {
	t := theme.DefaultTheme

	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = t.Header.Render(h)
	}

	table := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border)).
		Headers(styledHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// Row indices in StyleFunc start at 0 for data rows when
			// headers are set via .Headers().
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, r := range rows {
		table = table.Row(r...)
	}

	// The rendered output is:
	// Line 0: top border
	// Line 1: header row
	// Line 2: separator after header
	// Line 3+: data rows
	selectedLineIndex := 3 + selectedIndex
	if len(headers) == 0 {
		selectedLineIndex = 1 + selectedIndex
	}

	arrow := t.Highlight.Render("▶")
	var b strings.Builder
	for i, line := range strings.Split(table.String(), "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == selectedLineIndex {
			b.WriteString(arrow + " " + line)
		} else {
			b.WriteString("  " + line)
		}
	}

	return b.String()
}
