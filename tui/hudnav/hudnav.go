// Package hudnav implements the interactive HUD navigator TUI. It lists every
// HUD discovered under the content root, lets the user filter, favorite, and
// activate them, and rescans automatically when the watcher reports changes.
package hudnav

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MrWheatley/hud-manager/hud"
	"github.com/MrWheatley/hud-manager/tui/components/help"
)

// New creates a new model for the HUD navigator TUI. The collection is
// expected to have been scanned already; the watcher may be nil to disable
// automatic rescans.
func New(huds *hud.Huds, watcher *hud.Watcher) *Model {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.Prompt = "/ "
	input.CharLimit = 64

	m := &Model{
		huds:        huds,
		watcher:     watcher,
		keys:        DefaultKeyMap,
		filterInput: input,
	}
	m.help = help.New(m.keys)
	m.help.Title = "HUD Navigator"
	m.applyFilter()
	return m
}

// setStatus records a message for the footer.
func (m *Model) setStatus(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
	m.statusIsErr = false
}

// setError records an error message for the footer.
func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusIsErr = true
}
