package input

import (
	"context"

	"eventbot/internal/domain/entities"
)

// LeaderboardEntry is one ranked creator. Ranks 1-3 are rendered with
// medals; the remainder is purely numbered.
type LeaderboardEntry struct {
	Rank  int
	Stats entities.UserStats
}

type LeaderboardUseCase interface {
	// Rank returns at most limit creators with approved events, best first.
	Rank(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
