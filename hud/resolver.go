package hud

import (
	"os"
	"path/filepath"

	"github.com/MrWheatley/hud-manager/errors"
)

// ResolveRoot derives the content root from the running executable's
// location. The binary must sit either directly inside the content root
// (`custom`) or inside its huds subdirectory (`custom/huds`); in the latter
// case the subdirectory is stripped. Anything else is a layout error.
//
// This is pure path arithmetic; no filesystem access happens beyond locating
// the running binary.
func ResolveRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeLayoutInvalid, "failed to locate running executable")
	}
	return resolveFromDir(filepath.Dir(exe))
}

// ResolveRootWithOverride resolves the content root from an explicit
// directory instead of the executable's location. The override still has to
// satisfy the layout rule so a typo'd path cannot silently become a scan
// root. An empty override falls back to ResolveRoot.
func ResolveRootWithOverride(override string) (string, error) {
	if override == "" {
		return ResolveRoot()
	}
	return resolveFromDir(override)
}

func resolveFromDir(dir string) (string, error) {
	dir = filepath.Clean(dir)

	if filepath.Base(dir) == HudsDirName && filepath.Base(filepath.Dir(dir)) == RootDirName {
		return filepath.Dir(dir), nil
	}
	if filepath.Base(dir) == RootDirName {
		return dir, nil
	}

	return "", errors.LayoutInvalid(dir)
}
