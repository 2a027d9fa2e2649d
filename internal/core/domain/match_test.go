package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSortMatches_DescendingScore tests that ranking is non-increasing in score
func TestSortMatches_DescendingScore(t *testing.T) {
	matches := []RetrievedMatch{
		{ID: "a", Score: 0.3},
		{ID: "b", Score: 0.9},
		{ID: "c", Score: 0.7},
	}

	SortMatches(matches)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	assert.Equal(t, "b", matches[0].ID)
	assert.Equal(t, "c", matches[1].ID)
	assert.Equal(t, "a", matches[2].ID)
}

// TestSortMatches_TieBreakByID tests deterministic ordering on exact score ties
func TestSortMatches_TieBreakByID(t *testing.T) {
	matches := []RetrievedMatch{
		{ID: "z", Score: 0.5},
		{ID: "a", Score: 0.5},
		{ID: "m", Score: 0.5},
	}

	SortMatches(matches)

	assert.Equal(t, "a", matches[0].ID)
	assert.Equal(t, "m", matches[1].ID)
	assert.Equal(t, "z", matches[2].ID)
}

// TestSortMatches_Empty tests that an empty slice is handled
func TestSortMatches_Empty(t *testing.T) {
	var matches []RetrievedMatch
	SortMatches(matches)
	assert.Empty(t, matches)
}
