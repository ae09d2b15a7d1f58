// Package cmd holds the hud-manager subcommands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MrWheatley/hud-manager/cli"
	"github.com/MrWheatley/hud-manager/config"
	"github.com/MrWheatley/hud-manager/errors"
	"github.com/MrWheatley/hud-manager/hud"
)

// rootOverride resolves the content-root override in precedence order:
// --root flag, then HUD_MANAGER_ROOT, then custom_dir from hudmanager.yml.
// Empty means no override and the root derives from the executable path.
func rootOverride(cmd *cobra.Command) string {
	if root := cli.GetOptions(cmd).Root; root != "" {
		return root
	}
	if root := os.Getenv("HUD_MANAGER_ROOT"); root != "" {
		return root
	}
	if cfg, err := config.LoadDefault(); err == nil && cfg.CustomDir != "" {
		return cfg.CustomDir
	}
	return ""
}

// loadCollection resolves the content root, loads favorites, and scans the
// collection. A corrupt favorites file is reported as a warning and the scan
// proceeds with no favorites.
func loadCollection(cmd *cobra.Command) (*hud.Huds, error) {
	root, err := hud.ResolveRootWithOverride(rootOverride(cmd))
	if err != nil {
		return nil, err
	}

	huds := hud.New(root)
	if err := huds.UpdateFavorites(); err != nil {
		if !errors.Is(err, errors.ErrCodeEncodingInvalid) {
			return nil, err
		}
		cli.GetLogger(cmd).WithField("root", root).Warn("favorites file is not valid UTF-8, ignoring it")
	}
	if err := huds.Scan(); err != nil {
		return nil, err
	}
	return huds, nil
}
