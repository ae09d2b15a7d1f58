package hud

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MrWheatley/hud-manager/errors"
	"github.com/MrWheatley/hud-manager/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFindsActiveAndInstalled(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallActiveHud(t, root, "budhud")
	testutil.InstallHud(t, root, "flawhud")
	testutil.InstallHud(t, root, "ahud")

	h := New(root)
	require.NoError(t, h.Scan())

	require.NotNil(t, h.Active)
	assert.Equal(t, "budhud", h.Active.Name)
	assert.Equal(t, filepath.Join(root, "budhud"), h.Active.Path)
	assert.Equal(t, []string{"ahud", "budhud", "flawhud"}, h.Names())
}

func TestScanNoActive(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())

	assert.Nil(t, h.Active)
	assert.Equal(t, []string{"flawhud"}, h.Names())
}

func TestScanEmptyRoot(t *testing.T) {
	h := New(testutil.ContentRoot(t))
	require.NoError(t, h.Scan())

	assert.Nil(t, h.Active)
	assert.Empty(t, h.All)
}

func TestScanTakesFirstRootCandidateOnly(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallActiveHud(t, root, "ahud")
	testutil.InstallActiveHud(t, root, "zhud")

	h := New(root)
	require.NoError(t, h.Scan())

	require.NotNil(t, h.Active)
	assert.Equal(t, "ahud", h.Active.Name)
	assert.Equal(t, []string{"ahud"}, h.Names())
}

func TestScanIsDestructive(t *testing.T) {
	root := testutil.ContentRoot(t)
	dir := testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())
	require.Len(t, h.All, 1)

	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, h.Scan())
	assert.Empty(t, h.All)
}

func TestScanIgnoresDeepDescriptors(t *testing.T) {
	root := testutil.ContentRoot(t)
	// Descriptor nested one level too deep under the huds directory.
	deep := filepath.Join(root, "huds", "somehud", "resource")
	require.NoError(t, os.MkdirAll(deep, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(deep, "info.vdf"), nil, 0644))

	h := New(root)
	require.NoError(t, h.Scan())
	assert.Empty(t, h.All)
}

func TestOrderingFavoritesFirst(t *testing.T) {
	root := testutil.ContentRoot(t)
	for _, name := range []string{"zeta", "alpha", "mid", "beta"} {
		testutil.InstallHud(t, root, name)
	}
	testutil.WriteFavorites(t, root, "zeta", "beta")

	h := New(root)
	require.NoError(t, h.UpdateFavorites())
	require.NoError(t, h.Scan())

	assert.Equal(t, []string{"beta", "zeta", "alpha", "mid"}, h.Names())
	assert.True(t, h.All[0].Favorite)
	assert.True(t, h.All[1].Favorite)
	assert.False(t, h.All[2].Favorite)
	assert.False(t, h.All[3].Favorite)
}

func TestSetActiveSwap(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallActiveHud(t, root, "budhud")
	testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())

	require.NoError(t, h.SetActive("flawhud"))

	require.NotNil(t, h.Active)
	assert.Equal(t, "flawhud", h.Active.Name)
	assert.DirExists(t, filepath.Join(root, "flawhud"))
	assert.DirExists(t, filepath.Join(root, "huds", "budhud"))
	assert.NoDirExists(t, filepath.Join(root, "budhud"))

	// A rescan reproduces the same active HUD and ordering.
	require.NoError(t, h.Scan())
	require.NotNil(t, h.Active)
	assert.Equal(t, "flawhud", h.Active.Name)
	assert.Equal(t, []string{"budhud", "flawhud"}, h.Names())
}

func TestSetActiveWithoutCurrent(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())
	require.Nil(t, h.Active)

	require.NoError(t, h.SetActive("flawhud"))
	assert.Equal(t, "flawhud", h.Active.Name)
	assert.DirExists(t, filepath.Join(root, "flawhud"))
}

func TestSetActiveAlreadyActive(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallActiveHud(t, root, "budhud")

	h := New(root)
	require.NoError(t, h.Scan())

	before := h.Names()
	err := h.SetActive("budhud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeHudAlreadyActive))

	// No state change.
	assert.Equal(t, before, h.Names())
	assert.Equal(t, "budhud", h.Active.Name)
	assert.DirExists(t, filepath.Join(root, "budhud"))
}

func TestSetActiveUnknownName(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())

	err := h.SetActive("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeHudNotFound))
}

func TestSetActiveStaleActiveDirectory(t *testing.T) {
	root := testutil.ContentRoot(t)
	active := testutil.InstallActiveHud(t, root, "budhud")
	testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())

	// The active directory disappears behind our back; activation skips the
	// move-out step and still succeeds.
	require.NoError(t, os.RemoveAll(active))
	require.NoError(t, h.SetActive("flawhud"))
	assert.Equal(t, "flawhud", h.Active.Name)
}

func TestSetActiveMoveOutBlockedLeavesEverythingInPlace(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallActiveHud(t, root, "budhud")
	testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())

	// A non-empty directory already sits where the active HUD would be
	// parked, so the first rename fails with ENOTEMPTY.
	blocker := filepath.Join(root, "huds", "budhud")
	require.NoError(t, os.MkdirAll(blocker, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(blocker, "stray.txt"), []byte("x"), 0644))

	err := h.SetActive("flawhud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeIOFailed))

	// Nothing moved on disk and the model still reports the old active HUD.
	require.NotNil(t, h.Active)
	assert.Equal(t, "budhud", h.Active.Name)
	assert.FileExists(t, filepath.Join(root, "budhud", "info.vdf"))
	assert.FileExists(t, filepath.Join(root, "huds", "flawhud", "info.vdf"))
}

func TestSetActiveMoveInBlockedLeavesNoActiveHud(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallActiveHud(t, root, "budhud")
	testutil.InstallHud(t, root, "flawhud")

	h := New(root)
	require.NoError(t, h.Scan())

	// The target's destination at the root is occupied, so the move out
	// succeeds but the move in fails partway through the swap.
	blocker := filepath.Join(root, "flawhud")
	require.NoError(t, os.MkdirAll(blocker, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(blocker, "stray.txt"), []byte("x"), 0644))

	err := h.SetActive("flawhud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeIOFailed))

	// The old active HUD was already parked, leaving no HUD active.
	assert.Nil(t, h.Active)
	assert.FileExists(t, filepath.Join(root, "huds", "budhud", "info.vdf"))
	assert.FileExists(t, filepath.Join(root, "huds", "flawhud", "info.vdf"))

	// A rescan recovers a consistent view with both HUDs installed.
	require.NoError(t, h.Scan())
	assert.Nil(t, h.Active)
	assert.Equal(t, []string{"budhud", "flawhud"}, h.Names())
}

func TestSaveFavoritesWritesSortedPrefix(t *testing.T) {
	root := testutil.ContentRoot(t)
	for _, name := range []string{"zeta", "alpha", "beta"} {
		testutil.InstallHud(t, root, name)
	}

	h := New(root)
	require.NoError(t, h.UpdateFavorites())
	require.NoError(t, h.Scan())

	require.NoError(t, h.ToggleFavorite("zeta"))
	require.NoError(t, h.ToggleFavorite("beta"))
	require.NoError(t, h.SaveFavorites())

	assert.Equal(t, "beta\nzeta", testutil.ReadFavorites(t, root))

	// Untoggling shrinks the prefix and the file on the next save.
	require.NoError(t, h.ToggleFavorite("beta"))
	require.NoError(t, h.SaveFavorites())
	assert.Equal(t, "zeta", testutil.ReadFavorites(t, root))
}

func TestFavoritesRoundTrip(t *testing.T) {
	root := testutil.ContentRoot(t)
	for _, name := range []string{"alpha", "beta", "gamma"} {
		testutil.InstallHud(t, root, name)
	}
	// Load order is irrelevant; the file is an unordered set.
	testutil.WriteFavorites(t, root, "gamma", "alpha")

	h := New(root)
	require.NoError(t, h.UpdateFavorites())
	require.NoError(t, h.Scan())

	assert.Equal(t, []string{"alpha", "gamma", "beta"}, h.Names())
	assert.True(t, h.Find("alpha").Favorite)
	assert.True(t, h.Find("gamma").Favorite)
	assert.False(t, h.Find("beta").Favorite)

	require.NoError(t, h.SaveFavorites())
	assert.Equal(t, "alpha\ngamma", testutil.ReadFavorites(t, root))
}

func TestUpdateFavoritesCreatesMissingFile(t *testing.T) {
	root := testutil.ContentRoot(t)

	h := New(root)
	require.NoError(t, h.UpdateFavorites())

	assert.FileExists(t, filepath.Join(root, "huds", "favorites.txt"))
	assert.Empty(t, testutil.ReadFavorites(t, root))
}

func TestUpdateFavoritesInvalidEncoding(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallHud(t, root, "flawhud")
	hudsDir := filepath.Join(root, "huds")
	require.NoError(t, os.WriteFile(
		filepath.Join(hudsDir, "favorites.txt"),
		[]byte{0xff, 0xfe, 0xfd},
		0644,
	))

	h := New(root)
	err := h.UpdateFavorites()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeEncodingInvalid))

	// Favorites stay empty for the session.
	require.NoError(t, h.Scan())
	assert.False(t, h.Find("flawhud").Favorite)
}

func TestUpdateFavoritesTrimsLineEndings(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.InstallHud(t, root, "flawhud")
	hudsDir := filepath.Join(root, "huds")
	require.NoError(t, os.WriteFile(
		filepath.Join(hudsDir, "favorites.txt"),
		[]byte("flawhud\r\n\r\n"),
		0644,
	))

	h := New(root)
	require.NoError(t, h.UpdateFavorites())
	require.NoError(t, h.Scan())

	assert.True(t, h.Find("flawhud").Favorite)
}

func TestToggleFavoriteResorts(t *testing.T) {
	root := testutil.ContentRoot(t)
	for _, name := range []string{"alpha", "zeta"} {
		testutil.InstallHud(t, root, name)
	}

	h := New(root)
	require.NoError(t, h.Scan())
	require.Equal(t, []string{"alpha", "zeta"}, h.Names())

	require.NoError(t, h.ToggleFavorite("zeta"))
	assert.Equal(t, []string{"zeta", "alpha"}, h.Names())

	require.NoError(t, h.ToggleFavorite("zeta"))
	assert.Equal(t, []string{"alpha", "zeta"}, h.Names())
}
