package hudnav

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrWheatley/hud-manager/tui/components/table"
	"github.com/MrWheatley/hud-manager/tui/theme"
)

// View renders the TUI with a table-based HUD list.
func (m Model) View() string {
	t := theme.DefaultTheme

	// Handle very small terminal sizes
	if m.width < 40 || m.height < 10 {
		return "Terminal too small. Please resize."
	}

	if m.help.ShowAll {
		return m.help.View()
	}

	// Define fixed heights for header and footer
	const headerHeight = 3
	const footerHeight = 3
	const topMargin = 1

	mainAreaHeight := m.height - headerHeight - footerHeight - topMargin
	if mainAreaHeight < 5 {
		return "Terminal too small. Please resize."
	}

	headerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Colors.Orange).
		Width(m.width - 4).
		Height(headerHeight - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)

	mainContentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Colors.Border).
		Width(m.width - 4).
		Height(mainAreaHeight - 2).
		Padding(1)

	footerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Colors.Orange).
		Width(m.width - 4).
		Height(footerHeight - 2).
		Align(lipgloss.Center, lipgloss.Center)

	availableTableHeight := mainAreaHeight - 9
	if availableTableHeight < 1 {
		availableTableHeight = 1
	}

	headerContent := "HUD MANAGER"
	if m.huds.Active != nil {
		headerContent += "  " + t.ActiveHud.Render(fmt.Sprintf("[active: %s]", m.huds.Active.Name))
	}

	mainContent := m.buildTableView(availableTableHeight)

	header := headerStyle.Render(headerContent)
	mainContentBox := mainContentStyle.Render(mainContent)
	footer := footerStyle.Render(m.footerContent())

	fullLayout := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		mainContentBox,
		footer,
	)

	// Add top margin to prevent border cutoff
	return "\n" + fullLayout
}

// footerContent builds the footer line: filter input when focused, then any
// status message, then the short help line.
func (m Model) footerContent() string {
	t := theme.DefaultTheme

	if m.filterInput.Focused() {
		return m.filterInput.View()
	}

	var parts []string
	if filter := m.filterInput.Value(); filter != "" {
		parts = append(parts, fmt.Sprintf("Filter: %s", filter))
	}
	if m.status != "" {
		if m.statusIsErr {
			parts = append(parts, t.Error.Render(m.status))
		} else {
			parts = append(parts, t.Success.Render(m.status))
		}
	}
	if len(parts) == 0 {
		return m.help.View()
	}
	return strings.Join(parts, " • ")
}

// buildTableView constructs and renders the scrollable HUD table.
func (m Model) buildTableView(availableHeight int) string {
	t := theme.DefaultTheme

	if len(m.visible) == 0 {
		return "No HUDs discovered.\n\nInstall HUDs under the huds directory of the content root."
	}

	allRows := m.buildTableRows()

	// Calculate visible rows based on scroll offset
	startIdx := m.scrollOffset
	endIdx := startIdx + availableHeight
	if endIdx > len(allRows) {
		endIdx = len(allRows)
	}
	if startIdx >= len(allRows) {
		startIdx = 0
		endIdx = len(allRows)
		if endIdx > availableHeight {
			endIdx = availableHeight
		}
	}

	visibleRows := allRows[startIdx:endIdx]

	// Adjust cursor to be relative to the visible window
	relativeCursor := m.cursor - startIdx
	if relativeCursor < 0 {
		relativeCursor = 0
	}
	if relativeCursor >= len(visibleRows) {
		relativeCursor = len(visibleRows) - 1
	}

	mainContent := table.SelectableTable(
		[]string{"★", "HUD", "PATH"},
		visibleRows,
		relativeCursor,
	)

	// Add scroll indicator if there are more items
	if len(allRows) > availableHeight {
		mainContent += "\n" + t.Muted.Render(
			fmt.Sprintf("Showing %d-%d of %d HUDs", startIdx+1, endIdx, len(allRows)),
		)
	}

	return mainContent
}

// buildTableRows creates the data rows for the HUD table.
func (m Model) buildTableRows() [][]string {
	t := theme.DefaultTheme

	var rows [][]string
	for _, h := range m.visible {
		star := " "
		if h.Favorite {
			star = t.FavoriteHud.Render("★")
		}

		name := h.Name
		if m.huds.Active != nil && m.huds.Active.Name == h.Name {
			name = t.ActiveHud.Render(name + " (active)")
		}

		rows = append(rows, []string{
			star,
			name,
			t.Muted.Render(shortenPath(h.Path)),
		})
	}
	return rows
}
