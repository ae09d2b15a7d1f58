// Package help provides an embeddable help overlay for TUI models.
package help

import (
	"fmt"
	"strings"

	"github.com/MrWheatley/hud-manager/tui/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// KeyMap is the minimal interface a keymap must satisfy to be displayed.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// Model represents an embeddable help component
type Model struct {
	Keys     KeyMap
	ShowAll  bool
	Width    int
	Height   int
	Theme    *theme.Theme
	Title    string // Title for the full help view
	viewport viewport.Model
}

// New creates a new help model with default settings
func New(keys KeyMap) Model {
	vp := viewport.New(0, 0)
	// Disable mouse events for the viewport by default, as it can interfere
	// with the main application's mouse handling.
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		ShowAll:  false,
		Theme:    theme.DefaultTheme,
		viewport: vp,
	}
}

// Update handles messages for the help component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if m.ShowAll {
			if msg.String() == "?" || msg.String() == "q" || msg.Type == tea.KeyEsc {
				m.Toggle()
				return m, nil
			}

			// Pass all other messages to the viewport for scrolling
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the help component
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if m.ShowAll {
		content := m.viewport.View()

		// Add scroll indicator if viewport is scrollable
		if m.viewport.TotalLineCount() > m.viewport.Height {
			indicator := "↕ more"
			if m.viewport.AtTop() {
				indicator = "↓ more"
			} else if m.viewport.AtBottom() {
				indicator = "↑ more"
			}

			indicatorStyle := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
			content = lipgloss.JoinVertical(lipgloss.Right, content, indicatorStyle.Render(indicator))
		}

		// Center the viewport on the screen to create a modal effect.
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	return m.viewShort(m.Keys.ShortHelp())
}

// viewShort renders the compact, single-line help view.
func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		keys := binding.Help().Key
		desc := binding.Help().Desc
		if keys != "" && desc != "" {
			pair := fmt.Sprintf("%s %s %s",
				m.Theme.Highlight.Render(keys),
				m.Theme.Muted.Render("•"),
				m.Theme.Muted.Render(desc),
			)
			pairs = append(pairs, pair)
		}
	}

	if len(pairs) == 0 {
		return ""
	}

	helpPrompt := m.Theme.Muted.Render("Press ") +
		m.Theme.Highlight.Render("?") +
		m.Theme.Muted.Render(" for help")

	return helpPrompt + " • " + strings.Join(pairs, " • ")
}

// setViewportContent renders the full help content and sets it in the viewport.
func (m *Model) setViewportContent() {
	const verticalMargin = 4

	titleText := m.Title
	if titleText == "" {
		titleText = "Help"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)

	var blocks []string
	for _, group := range m.Keys.FullHelp() {
		if block := m.renderGroupBox(group); block != "" {
			blocks = append(blocks, block)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	content := lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(body)).Render(titleText), body)
	m.viewport.SetContent(content)

	// Reserve 1 line for the scroll indicator.
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = m.Height - verticalMargin - 1
}

// renderGroupBox renders one group of bindings into a styled box.
func (m *Model) renderGroupBox(group []key.Binding) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	rows := 0
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		keyStr := binding.Help().Key
		desc := binding.Help().Desc
		if keyStr != "" && desc != "" {
			table = table.Row(keyStyle.Render(keyStr), m.Theme.Muted.Italic(true).Render(desc))
			rows++
		}
	}
	if rows == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)

	return boxStyle.Render(table.String())
}

// Toggle toggles between showing all help and short help. When showing, it
// recalculates content layout and resets the scroll position.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}
