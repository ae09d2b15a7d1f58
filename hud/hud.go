// Package hud manages the directory-backed HUD collection inside a game's
// custom content folder. The active HUD lives directly under the content
// root; every other HUD rests in the huds subdirectory. A directory counts
// as a HUD when it contains the descriptor file info.vdf; the descriptor's
// contents are never read.
package hud

import "path/filepath"

const (
	// RootDirName is the required basename of the content root directory.
	RootDirName = "custom"

	// HudsDirName is the subdirectory holding non-active HUDs and the
	// favorites file.
	HudsDirName = "huds"

	// DescriptorName marks a directory as a HUD.
	DescriptorName = "info.vdf"

	// FavoritesFileName is the flat favorites list inside the huds directory.
	FavoritesFileName = "favorites.txt"
)

// Hud describes one discovered HUD. Name is the stable identity key; Path is
// the directory currently backing it and changes only when the HUD is moved
// during activation.
type Hud struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Favorite bool   `json:"favorite"`
}

// hudFromDescriptor builds a Hud from the path of its descriptor file.
func hudFromDescriptor(descriptor string) Hud {
	dir := filepath.Dir(descriptor)
	return Hud{
		Name: filepath.Base(dir),
		Path: dir,
	}
}

// less orders HUDs favorites-first, then byte-wise by name within each group.
func less(a, b Hud) bool {
	if a.Favorite != b.Favorite {
		return a.Favorite
	}
	return a.Name < b.Name
}
