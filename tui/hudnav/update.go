package hudnav

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrWheatley/hud-manager/hud"
	"github.com/MrWheatley/hud-manager/search"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(m.width, m.height)
		return m, nil

	case hudsChangedMsg:
		m.rescan()
		m.setStatus("content root changed, rescanned")
		return m, waitForChange(m.watcher)

	case folderOpenedMsg:
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.setStatus("opened folder of %s", msg.name)
		}
		return m, nil

	case tea.KeyMsg:
		// The help overlay owns the keyboard while open: it closes itself
		// on ?/q/esc and scrolls its viewport on everything else.
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

		// Handle filter input when it's focused. Only esc and ctrl+c leave
		// the input; plain letters like q belong to the filter text.
		if m.filterInput.Focused() {
			switch {
			case msg.Type == tea.KeyEsc, msg.Type == tea.KeyCtrlC:
				m.filterInput.Blur()
				m.filterInput.SetValue("")
				m.applyFilter()
				m.cursor = 0
				m.scrollOffset = 0
				return m, nil
			case key.Matches(msg, m.keys.Up):
				if m.cursor > 0 {
					m.cursor--
				}
				return m, nil
			case key.Matches(msg, m.keys.Down):
				if m.cursor < len(m.visible)-1 {
					m.cursor++
				}
				return m, nil
			case key.Matches(msg, m.keys.Activate):
				m.filterInput.Blur()
				m.activateSelected()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filterInput, cmd = m.filterInput.Update(msg)
				m.applyFilter()
				m.cursor = 0
				m.scrollOffset = 0
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, m.keys.Search):
			m.filterInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Activate):
			m.activateSelected()

		case key.Matches(msg, m.keys.Favorite):
			m.favoriteSelected()

		case key.Matches(msg, m.keys.Rescan):
			m.rescan()
			m.setStatus("rescanned, %d HUDs", len(m.huds.All))

		case key.Matches(msg, m.keys.OpenFolder):
			if entry := m.selected(); entry != nil {
				return m, openFolderCmd(entry.Name, entry.Path)
			}

		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
			return m, nil

		case key.Matches(msg, m.keys.Top):
			// Handle 'gg' - go to top
			if m.lastKeyWasG {
				m.cursor = 0
				m.ensureCursorVisible()
				m.lastKeyWasG = false
			} else {
				m.lastKeyWasG = true
			}

		case key.Matches(msg, m.keys.Bottom):
			if len(m.visible) > 0 {
				m.cursor = len(m.visible) - 1
				m.ensureCursorVisible()
			}
			m.lastKeyWasG = false

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.ensureCursorVisible()
			}
			m.lastKeyWasG = false

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.ensureCursorVisible()
			}
			m.lastKeyWasG = false

		case key.Matches(msg, m.keys.PageUp):
			m.cursor -= m.height / 2
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.ensureCursorVisible()
			m.lastKeyWasG = false

		case key.Matches(msg, m.keys.PageDown):
			m.cursor += m.height / 2
			if m.cursor >= len(m.visible) {
				m.cursor = len(m.visible) - 1
			}
			m.ensureCursorVisible()
			m.lastKeyWasG = false

		default:
			// Reset lastKeyWasG for any other key
			m.lastKeyWasG = false
		}
	}

	return m, nil
}

// selected returns the HUD under the cursor, or nil when the list is empty.
func (m *Model) selected() *hud.Hud {
	if len(m.visible) == 0 || m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.visible[m.cursor]
}

// activateSelected swaps the HUD under the cursor into the content root and
// rescans so the view reflects what actually happened on disk.
func (m *Model) activateSelected() {
	entry := m.selected()
	if entry == nil {
		return
	}
	name := entry.Name

	err := m.huds.SetActive(name)
	m.rescan()
	if err != nil {
		m.setError(err)
		return
	}
	m.moveCursorTo(name)
	m.setStatus("activated %s", name)
}

// favoriteSelected toggles the favorite flag under the cursor and persists
// the favorites file. The cursor follows the HUD to its new sorted position.
func (m *Model) favoriteSelected() {
	entry := m.selected()
	if entry == nil {
		return
	}
	name := entry.Name

	if err := m.huds.ToggleFavorite(name); err != nil {
		m.setError(err)
		return
	}
	if err := m.huds.SaveFavorites(); err != nil {
		m.setError(err)
		return
	}
	m.applyFilter()
	m.moveCursorTo(name)
	if h := m.huds.Find(name); h != nil && h.Favorite {
		m.setStatus("favorited %s", name)
	} else {
		m.setStatus("unfavorited %s", name)
	}
}

// rescan reloads favorites and rebuilds the collection from disk, then
// refreshes the filtered view.
func (m *Model) rescan() {
	if err := m.huds.UpdateFavorites(); err != nil {
		m.setError(err)
	}
	if err := m.huds.Scan(); err != nil {
		m.setError(err)
	}
	m.applyFilter()
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// applyFilter rebuilds the visible list from the collection and the current
// filter text. Collection order is preserved; only membership changes. A
// query matching nothing reports the error in the footer and leaves the
// list unfiltered.
func (m *Model) applyFilter() {
	m.visible = m.visible[:0]

	query := m.filterInput.Value()
	matches, err := search.Filter(query, m.huds.Names())
	if err != nil {
		m.setError(err)
		matches = nil
	}

	for _, h := range m.huds.All {
		if matches != nil {
			if _, ok := matches[h.Name]; !ok {
				continue
			}
		}
		m.visible = append(m.visible, h)
	}
}

// moveCursorTo places the cursor on the named HUD if it is visible.
func (m *Model) moveCursorTo(name string) {
	for i, h := range m.visible {
		if h.Name == name {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

// ensureCursorVisible adjusts the scroll offset to ensure the cursor is visible
func (m *Model) ensureCursorVisible() {
	const headerHeight = 3
	const footerHeight = 3
	const topMargin = 1
	mainAreaHeight := m.height - headerHeight - footerHeight - topMargin
	availableHeight := mainAreaHeight - 2 - 2 - 2 // borders, padding, header row + separator

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}

	if m.cursor >= m.scrollOffset+availableHeight {
		m.scrollOffset = m.cursor - availableHeight + 1
	}
}
