package hud

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MrWheatley/hud-manager/errors"
)

// Huds owns every HUD discovered under one content root, the currently
// active HUD, and the persisted favorites set. It is not safe for concurrent
// use; all mutation is expected to happen on a single goroutine.
type Huds struct {
	// All is the discovered HUDs in display order: favorites first, each
	// group sorted byte-wise by name.
	All []Hud

	// Active is the HUD currently resident at the content root, if any.
	Active *Hud

	root      string
	favorites map[string]struct{}
}

// New creates an empty collection for the given content root.
func New(root string) *Huds {
	return &Huds{
		root:      root,
		favorites: make(map[string]struct{}),
	}
}

// Root returns the content root this collection scans.
func (h *Huds) Root() string {
	return h.root
}

// Scan rebuilds the collection from disk. The first descriptor found at the
// content root (depth <= 2) marks the active HUD; every descriptor under
// the huds subdirectory marks a non-active one. Prior state is discarded,
// favorite flags are re-derived from the loaded favorites set, and the slice
// is re-sorted.
//
// Only the first root-level match is taken, even when several directories
// at the root qualify; extra candidates are ignored.
func (h *Huds) Scan() error {
	h.All = h.All[:0]
	h.Active = nil

	rootMatches, err := findDescriptors(h.root, true)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeIOFailed, "failed to scan content root").
			WithDetail("root", h.root)
	}
	if len(rootMatches) > 0 {
		active := h.fromDescriptor(rootMatches[0])
		h.All = append(h.All, active)
		h.Active = &active
	}

	hudsDir := filepath.Join(h.root, HudsDirName)
	matches, err := findDescriptors(hudsDir, false)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeIOFailed, "failed to scan huds directory").
			WithDetail("dir", hudsDir)
	}
	for _, m := range matches {
		h.All = append(h.All, h.fromDescriptor(m))
	}

	h.Sort()
	return nil
}

func (h *Huds) fromDescriptor(descriptor string) Hud {
	hud := hudFromDescriptor(descriptor)
	_, hud.Favorite = h.favorites[hud.Name]
	return hud
}

// Sort restores the ordering invariant after favorite flags change.
func (h *Huds) Sort() {
	sort.SliceStable(h.All, func(i, j int) bool {
		return less(h.All[i], h.All[j])
	})
}

// Find returns the HUD with the given name, or nil.
func (h *Huds) Find(name string) *Hud {
	for i := range h.All {
		if h.All[i].Name == name {
			return &h.All[i]
		}
	}
	return nil
}

// Names returns the names of every HUD in display order.
func (h *Huds) Names() []string {
	names := make([]string, len(h.All))
	for i, hud := range h.All {
		names[i] = hud.Name
	}
	return names
}

// SetActive makes the named HUD the active one by swapping directories: the
// current active HUD (if its directory still exists) moves into the huds
// subdirectory, then the target moves to the content root.
//
// If the first move fails the model is untouched. If the first move succeeds
// and the second fails, the collection is left with no active HUD and the
// caller should rescan to reconcile with disk.
func (h *Huds) SetActive(name string) error {
	target := h.Find(name)
	if target == nil {
		return errors.HudNotFound(name)
	}

	if h.Active != nil {
		if _, err := os.Stat(h.Active.Path); err == nil {
			if h.Active.Name == name {
				return errors.HudAlreadyActive(name)
			}

			to := filepath.Join(h.root, HudsDirName, h.Active.Name)
			if err := os.Rename(h.Active.Path, to); err != nil {
				return errors.MoveFailed(h.Active.Name, h.Active.Path, to, err)
			}
			if prev := h.Find(h.Active.Name); prev != nil {
				prev.Path = to
			}
			h.Active = nil
		}
	}

	to := filepath.Join(h.root, target.Name)
	if err := os.Rename(target.Path, to); err != nil {
		return errors.MoveFailed(target.Name, target.Path, to, err)
	}
	target.Path = to

	active := *target
	h.Active = &active
	return nil
}

// ToggleFavorite flips the favorite flag on the named HUD and re-sorts.
// Persistence is a separate, explicit SaveFavorites call.
func (h *Huds) ToggleFavorite(name string) error {
	hud := h.Find(name)
	if hud == nil {
		return errors.HudNotFound(name)
	}
	hud.Favorite = !hud.Favorite
	if h.Active != nil && h.Active.Name == name {
		h.Active.Favorite = hud.Favorite
	}
	h.Sort()
	return nil
}

// SaveFavorites rewrites the favorites file with the favorited prefix of the
// sorted slice, rebuilding the in-memory set from the same prefix so the two
// never drift. The file holds one name per line.
func (h *Huds) SaveFavorites() error {
	hudsDir := filepath.Join(h.root, HudsDirName)
	if err := os.MkdirAll(hudsDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrCodeIOFailed, "failed to create huds directory").
			WithDetail("dir", hudsDir)
	}

	h.favorites = make(map[string]struct{})
	var names []string
	for _, hud := range h.All {
		if !hud.Favorite {
			break
		}
		names = append(names, hud.Name)
		h.favorites[hud.Name] = struct{}{}
	}

	path := filepath.Join(hudsDir, FavoritesFileName)
	if err := os.WriteFile(path, []byte(strings.Join(names, "\n")), 0644); err != nil {
		return errors.Wrap(err, errors.ErrCodeIOFailed, "failed to write favorites file").
			WithDetail("path", path)
	}
	return nil
}

// UpdateFavorites loads the favorites set from disk. A missing file is
// created empty. The file is treated as an unordered set of non-empty lines;
// no further parsing happens.
func (h *Huds) UpdateFavorites() error {
	hudsDir := filepath.Join(h.root, HudsDirName)
	path := filepath.Join(hudsDir, FavoritesFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrap(err, errors.ErrCodeIOFailed, "failed to read favorites file").
				WithDetail("path", path)
		}
		if err := os.MkdirAll(hudsDir, 0755); err != nil {
			return errors.Wrap(err, errors.ErrCodeIOFailed, "failed to create huds directory").
				WithDetail("dir", hudsDir)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return errors.Wrap(err, errors.ErrCodeIOFailed, "failed to create favorites file").
				WithDetail("path", path)
		}
		h.favorites = make(map[string]struct{})
		return nil
	}

	h.favorites = make(map[string]struct{})
	if !utf8.Valid(data) {
		// Favorites stay empty for the session.
		return errors.EncodingInvalid(path)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			h.favorites[line] = struct{}{}
		}
	}
	return nil
}

// findDescriptors walks dir at depth <= 2 collecting descriptor file paths.
// With firstOnly set the walk stops at the first match. A missing dir yields
// no matches; unreadable entries below the walk root are skipped.
func findDescriptors(dir string, firstOnly bool) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		depth := walkDepth(dir, path)

		// Descriptors can only sit at depth <= 2; no need to descend further.
		if d.IsDir() && depth >= 2 {
			return fs.SkipDir
		}

		if !d.IsDir() && d.Name() == DescriptorName && depth <= 2 {
			found = append(found, path)
			if firstOnly {
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
