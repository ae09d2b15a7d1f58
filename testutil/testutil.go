// Package testutil builds throwaway content trees for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ContentRoot creates a `custom` content root inside a temp directory and
// returns its path.
func ContentRoot(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "custom")
	require.NoError(t, os.MkdirAll(root, 0755))
	return root
}

// InstallHud creates a HUD directory with a descriptor file under the huds
// subdirectory and returns its path.
func InstallHud(t *testing.T, root, name string) string {
	t.Helper()

	dir := filepath.Join(root, "huds", name)
	writeDescriptor(t, dir)
	return dir
}

// InstallActiveHud creates a HUD directory with a descriptor file directly
// under the content root and returns its path.
func InstallActiveHud(t *testing.T, root, name string) string {
	t.Helper()

	dir := filepath.Join(root, name)
	writeDescriptor(t, dir)
	return dir
}

func writeDescriptor(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "info.vdf"), []byte("\"ui_version\" \"3\"\n"), 0644))
}

// WriteFavorites writes the favorites file with the given names, one per line.
func WriteFavorites(t *testing.T, root string, names ...string) {
	t.Helper()

	hudsDir := filepath.Join(root, "huds")
	require.NoError(t, os.MkdirAll(hudsDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(hudsDir, "favorites.txt"),
		[]byte(strings.Join(names, "\n")),
		0644,
	))
}

// ReadFavorites returns the raw contents of the favorites file.
func ReadFavorites(t *testing.T, root string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, "huds", "favorites.txt"))
	require.NoError(t, err)
	return string(data)
}
