package hud

import (
	"path/filepath"
	"testing"

	"github.com/MrWheatley/hud-manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFromContentRoot(t *testing.T) {
	root, err := resolveFromDir(filepath.Join("/games", "tf", "custom"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/games", "tf", "custom"), root)
}

func TestResolveFromHudsSubdirectory(t *testing.T) {
	root, err := resolveFromDir(filepath.Join("/games", "tf", "custom", "huds"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/games", "tf", "custom"), root)
}

func TestResolveRejectsOtherDirectories(t *testing.T) {
	for _, dir := range []string{
		filepath.Join("/games", "tf"),
		filepath.Join("/games", "tf", "download"),
		// A huds directory outside a custom directory does not qualify.
		filepath.Join("/games", "tf", "huds"),
	} {
		_, err := resolveFromDir(dir)
		require.Error(t, err, "dir %s", dir)
		assert.True(t, errors.Is(err, errors.ErrCodeLayoutInvalid))
	}
}

func TestResolveRootWithOverride(t *testing.T) {
	root, err := ResolveRootWithOverride(filepath.Join("/mnt", "steam", "custom"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/mnt", "steam", "custom"), root)

	_, err = ResolveRootWithOverride(filepath.Join("/mnt", "steam", "tf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeLayoutInvalid))
}
