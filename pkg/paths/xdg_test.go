package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableRootOverride(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", "/opt/hudman")

	assert.Equal(t, filepath.Join("/opt/hudman", "config", "hud-manager"), ConfigDir())
	assert.Equal(t, filepath.Join("/opt/hudman", "state", "hud-manager"), StateDir())
	assert.Equal(t, filepath.Join("/opt/hudman", "cache", "hud-manager"), CacheDir())
}

func TestXDGOverride(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	assert.Equal(t, filepath.Join("/tmp/xdg-config", "hud-manager"), ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/xdg-state", "hud-manager"), StateDir())
	assert.Equal(t, filepath.Join("/tmp/xdg-state", "hud-manager", "logs"), LogDir())
}

func TestEnsureDirs(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", t.TempDir())

	err := EnsureDirs()
	assert.NoError(t, err)
	assert.DirExists(t, ConfigDir())
	assert.DirExists(t, LogDir())
}
