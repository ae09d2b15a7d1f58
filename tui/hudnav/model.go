package hudnav

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrWheatley/hud-manager/hud"
	"github.com/MrWheatley/hud-manager/tui/components/help"
)

// Model represents the state of the HUD navigator TUI.
type Model struct {
	huds         *hud.Huds
	visible      []hud.Hud // The filtered list currently displayed.
	watcher      *hud.Watcher
	keys         KeyMap
	help         help.Model
	filterInput  textinput.Model
	status       string
	statusIsErr  bool
	cursor       int
	scrollOffset int
	width        int
	height       int
	lastKeyWasG  bool // Track if last key press was 'g' for 'gg' combo
}

// Init is the first command that will be executed.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.watcher)
}
