package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrWheatley/hud-manager/hud"
	"github.com/MrWheatley/hud-manager/pkg/paths"
)

// PathsOutput represents the XDG-compliant paths used by hud-manager.
type PathsOutput struct {
	ContentRoot string `json:"content_root,omitempty"`
	ConfigDir   string `json:"config_dir"`
	StateDir    string `json:"state_dir"`
	CacheDir    string `json:"cache_dir"`
	LogDir      string `json:"log_dir"`
}

// NewPathsCmd creates the `paths` command.
func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the directories used by hud-manager",
		Long: `Print the resolved content root and the XDG-compliant directories
hud-manager reads and writes.

This command outputs the paths in JSON format, making it easy to parse
from scripts and other tools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := PathsOutput{
				ConfigDir: paths.ConfigDir(),
				StateDir:  paths.StateDir(),
				CacheDir:  paths.CacheDir(),
				LogDir:    paths.LogDir(),
			}

			// The content root is best-effort; printing paths should work
			// even outside a game directory.
			if root, err := hud.ResolveRootWithOverride(rootOverride(cmd)); err == nil {
				output.ContentRoot = root
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		},
	}

	return cmd
}
