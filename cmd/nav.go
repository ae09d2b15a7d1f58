package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MrWheatley/hud-manager/cli"
	"github.com/MrWheatley/hud-manager/hud"
	"github.com/MrWheatley/hud-manager/tui"
	"github.com/MrWheatley/hud-manager/tui/hudnav"
)

// NewNavCmd creates the `nav` command.
func NewNavCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Browse and manage HUDs interactively",
		Long: `Launch an interactive TUI listing every HUD under the content root.
Favorites sort first and the active HUD is highlighted. The list
rescans automatically when the content root changes on disk.`,
		RunE: RunNavigator,
	}

	return cmd
}

// RunNavigator launches the HUD navigator TUI. It also backs the root
// command so running hud-manager with no arguments opens the navigator.
func RunNavigator(cmd *cobra.Command, args []string) error {
	handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose)
	logger := cli.GetLogger(cmd)

	huds, err := loadCollection(cmd)
	if err != nil {
		return handler.Handle(err)
	}

	watcher, err := hud.NewWatcher(huds.Root(), 250*time.Millisecond)
	if err != nil {
		// The navigator still works without automatic rescans.
		logger.WithError(err).Warn("failed to watch content root, automatic rescan disabled")
		watcher = nil
	} else {
		defer watcher.Close()
	}

	tui.InitializeTUI()
	p := tea.NewProgram(hudnav.New(huds, watcher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return err
	}
	return nil
}
