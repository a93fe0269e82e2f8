package output

import (
	"context"

	"eventbot/internal/domain/entities"
)

type UserStatsRepository interface {
	// Upsert creates the stats record for the creator if absent and
	// refreshes the display fields otherwise. Counters are untouched.
	Upsert(ctx context.Context, creator entities.Creator) error
	IncrementCreated(ctx context.Context, identity string) error
	IncrementApproved(ctx context.Context, identity string) error
	// TopByApproved returns creators with events_approved > 0 ordered by
	// events_approved desc, events_created desc, created_at asc.
	TopByApproved(ctx context.Context, limit int) ([]entities.UserStats, error)
}
