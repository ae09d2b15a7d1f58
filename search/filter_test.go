package search

import (
	"testing"

	"github.com/MrWheatley/hud-manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyQueryMeansNoFilter(t *testing.T) {
	results, err := Filter("", []string{"budhud", "flawhud"})
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestNoMatches(t *testing.T) {
	_, err := Filter("zzzznomatch", []string{"budhud", "flawhud"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNoResults))
}

func TestNearEqualMatchesKept(t *testing.T) {
	results, err := Filter("Alph", []string{"Alpha", "Alphb", "Zeta"})
	require.NoError(t, err)

	assert.Contains(t, results, "Alpha")
	assert.Contains(t, results, "Alphb")
	assert.NotContains(t, results, "Zeta")
}

func TestCaseInsensitiveMatching(t *testing.T) {
	results, err := Filter("budhud", []string{"BudHud", "flawhud"})
	require.NoError(t, err)

	assert.Contains(t, results, "BudHud")
}

func TestBestMatchAlwaysKept(t *testing.T) {
	// Whatever the absolute scores are, the highest-scoring name has a
	// relative score of exactly 1 and always survives the threshold.
	results, err := Filter("budhud", []string{"budhud", "flawhud", "toonhud"})
	require.NoError(t, err)

	assert.Contains(t, results, "budhud")
}

func TestEmptyNameList(t *testing.T) {
	_, err := Filter("anything", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNoResults))
}
