package input

import (
	"context"

	"eventbot/internal/domain/entities"
)

// DecisionAction is a typed moderator decision, parsed once at the
// transport boundary.
type DecisionAction struct {
	EventID   string
	Decision  entities.Decision
	Moderator string
}

// ModerationOutcome reports what a dispatched decision did.
type ModerationOutcome struct {
	// Event is the decided event; nil when AlreadyProcessed.
	Event *entities.Event
	// AlreadyProcessed is set when the event was missing or no longer
	// pending. The moderator sees the same message either way.
	AlreadyProcessed bool
}

type ModerationUseCase interface {
	Dispatch(ctx context.Context, action DecisionAction) (ModerationOutcome, error)
}
