package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRankOrdering(t *testing.T) {
	stats := newFakeStatsRepo()
	stats.seed("a", "userA", 5, 5)
	stats.seed("b", "userB", 7, 5)
	stats.seed("c", "userC", 10, 3)
	a := NewLeaderboardAggregator(stats)

	entries, err := a.Rank(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Approved desc first, then created desc.
	assert.Equal(t, "b", entries[0].Stats.Identity)
	assert.Equal(t, "a", entries[1].Stats.Identity)
	assert.Equal(t, "c", entries[2].Stats.Identity)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestLeaderboardExcludesCreatorsWithoutApprovals(t *testing.T) {
	stats := newFakeStatsRepo()
	stats.seed("a", "userA", 4, 0)
	stats.seed("b", "userB", 1, 1)
	a := NewLeaderboardAggregator(stats)

	entries, err := a.Rank(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Stats.Identity)
}

func TestLeaderboardTiesBreakByEarliestRecord(t *testing.T) {
	stats := newFakeStatsRepo()
	// Seed order fixes CreatedAt ordering: older first.
	stats.seed("older", "older", 3, 3)
	stats.seed("newer", "newer", 3, 3)
	a := NewLeaderboardAggregator(stats)

	entries, err := a.Rank(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "older", entries[0].Stats.Identity)
	assert.Equal(t, "newer", entries[1].Stats.Identity)
}

func TestLeaderboardLimit(t *testing.T) {
	stats := newFakeStatsRepo()
	stats.seed("a", "a", 1, 1)
	stats.seed("b", "b", 2, 2)
	stats.seed("c", "c", 3, 3)
	a := NewLeaderboardAggregator(stats)

	entries, err := a.Rank(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Stats.Identity)
	assert.Equal(t, "b", entries[1].Stats.Identity)
}
