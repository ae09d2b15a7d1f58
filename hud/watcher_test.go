package hud

import (
	"testing"
	"time"

	"github.com/MrWheatley/hud-manager/testutil"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsHudInstall(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", t.TempDir())

	root := testutil.ContentRoot(t)
	w, err := NewWatcher(root, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	testutil.InstallHud(t, root, "flawhud")

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification after installing a hud")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", t.TempDir())

	root := testutil.ContentRoot(t)
	w, err := NewWatcher(root, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	for _, name := range []string{"a", "b", "c", "d"} {
		testutil.InstallActiveHud(t, root, name)
	}

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}

	// The burst collapses into at most one pending notification.
	select {
	case <-w.Changes():
	case <-time.After(300 * time.Millisecond):
	}
	select {
	case <-w.Changes():
		t.Fatal("expected bursts to be debounced")
	case <-time.After(300 * time.Millisecond):
	}
}
