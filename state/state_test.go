package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateOperations(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", t.TempDir())

	t.Run("Load empty state", func(t *testing.T) {
		st, err := Load()
		require.NoError(t, err)
		require.NotNil(t, st)
		assert.Empty(t, st)
	})

	t.Run("Set and Get string value", func(t *testing.T) {
		require.NoError(t, Set("test.key", "test-value"))

		got, err := GetString("test.key")
		require.NoError(t, err)
		assert.Equal(t, "test-value", got)
	})

	t.Run("Get missing key", func(t *testing.T) {
		_, ok, err := Get("does.not.exist")
		require.NoError(t, err)
		assert.False(t, ok)

		str, err := GetString("does.not.exist")
		require.NoError(t, err)
		assert.Equal(t, "", str)
	})

	t.Run("Delete key", func(t *testing.T) {
		require.NoError(t, Set("to.delete", "x"))
		require.NoError(t, Delete("to.delete"))

		_, ok, err := Get("to.delete")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRecordActivation(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", t.TempDir())

	require.NoError(t, RecordActivation("budhud", "flathud"))

	last, err := GetString(KeyLastActive)
	require.NoError(t, err)
	assert.Equal(t, "budhud", last)

	prev, err := GetString(KeyPreviousActive)
	require.NoError(t, err)
	assert.Equal(t, "flathud", prev)

	// No previous HUD keeps the stored value untouched.
	require.NoError(t, RecordActivation("zeeshud", ""))
	prev, err = GetString(KeyPreviousActive)
	require.NoError(t, err)
	assert.Equal(t, "flathud", prev)
}
