package input

import (
	"context"

	"eventbot/internal/domain/entities"
)

type EventUseCase interface {
	// Create persists a draft as a pending-approval event and bumps the
	// creator's created counter.
	Create(ctx context.Context, draft entities.Draft) (*entities.Event, error)
	// Transition applies a moderator decision exactly once.
	Transition(ctx context.Context, eventID string, decision entities.Decision) (*entities.Event, error)
	// RecordPublication stores the publication reference after approval.
	RecordPublication(ctx context.Context, eventID, ref string) error
	ListUpcoming(ctx context.Context) ([]entities.Event, error)
	ListPast(ctx context.Context) ([]entities.Event, error)
}
