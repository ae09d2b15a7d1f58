package hudnav

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrWheatley/hud-manager/hud"
)

// hudsChangedMsg is sent when the filesystem watcher reports a change under
// the content root and the collection should be rescanned.
type hudsChangedMsg struct{}

// folderOpenedMsg is sent when the attempt to open a HUD folder in the
// platform file manager has finished.
type folderOpenedMsg struct {
	name string
	err  error
}

// waitForChange blocks on the watcher's change channel and converts the next
// notification into a message. The returned command must be re-issued after
// every hudsChangedMsg to keep listening.
func waitForChange(w *hud.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return hudsChangedMsg{}
	}
}

// openFolderCmd launches the platform file manager on the given directory.
func openFolderCmd(name, path string) tea.Cmd {
	return func() tea.Msg {
		return folderOpenedMsg{name: name, err: openFolder(path)}
	}
}
