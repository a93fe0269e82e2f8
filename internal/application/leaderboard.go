package application

import (
	"context"
	"sort"

	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
)

var _ input.LeaderboardUseCase = (*LeaderboardAggregator)(nil)

// LeaderboardAggregator computes the ranked creator view over the counters
// maintained by the event lifecycle.
type LeaderboardAggregator struct {
	stats output.UserStatsRepository
}

func NewLeaderboardAggregator(stats output.UserStatsRepository) *LeaderboardAggregator {
	return &LeaderboardAggregator{stats: stats}
}

// Rank returns at most limit creators with at least one approved event,
// ordered by approved desc, then created desc, then earliest record first.
// The store query already orders this way; the stable sort re-asserts the
// contract so ranking stays deterministic regardless of the store.
func (a *LeaderboardAggregator) Rank(ctx context.Context, limit int) ([]input.LeaderboardEntry, error) {
	stats, err := a.stats.TopByApproved(ctx, limit)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].EventsApproved != stats[j].EventsApproved {
			return stats[i].EventsApproved > stats[j].EventsApproved
		}
		if stats[i].EventsCreated != stats[j].EventsCreated {
			return stats[i].EventsCreated > stats[j].EventsCreated
		}
		return stats[i].CreatedAt.Before(stats[j].CreatedAt)
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}

	entries := make([]input.LeaderboardEntry, len(stats))
	for i, s := range stats {
		entries[i] = input.LeaderboardEntry{Rank: i + 1, Stats: s}
	}
	return entries, nil
}
