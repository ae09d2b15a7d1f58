// Package paths provides XDG-compliant path resolution for hud-manager.
//
/// Resolution order:
// 1. HUD_MANAGER_HOME (portable root) → $HUD_MANAGER_HOME/{config,state,cache}
// 2. XDG env vars → $XDG_*_HOME/hud-manager
// 3. Platform defaults → ~/.config/hud-manager, ~/.local/state/hud-manager, etc.
package paths

import (
	"os"
	"path/filepath"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("HUD_MANAGER_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("HUD_MANAGER_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// getCacheHome returns the base cache home directory.
func getCacheHome() string {
	if home := os.Getenv("HUD_MANAGER_HOME"); home != "" {
		return filepath.Join(home, "cache")
	}
	if xdgCacheHome := os.Getenv("XDG_CACHE_HOME"); xdgCacheHome != "" {
		return xdgCacheHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".cache")
	}
	return ""
}

// ConfigDir returns the hud-manager configuration directory.
// Used for config files like hudmanager.yml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "hud-manager")
}

// StateDir returns the hud-manager state directory.
// Used for logs.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "hud-manager")
}

// CacheDir returns the hud-manager cache directory.
// Used for temporary/regenerable data.
func CacheDir() string {
	base := getCacheHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "hud-manager")
}

// LogDir returns the directory log files are written to.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// EnsureDirs creates all hud-manager directories if they don't exist.
func EnsureDirs() error {
	dirs := []string{
		ConfigDir(),
		StateDir(),
		CacheDir(),
		LogDir(),
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
