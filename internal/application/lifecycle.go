package application

import (
	"context"
	"fmt"
	"time"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
)

var _ input.EventUseCase = (*EventLifecycle)(nil)

// EventLifecycle owns the event approval state machine and the per-creator
// counters that feed the leaderboard.
type EventLifecycle struct {
	events output.EventRepository
	stats  output.UserStatsRepository
	now    func() time.Time
}

func NewEventLifecycle(events output.EventRepository, stats output.UserStatsRepository) *EventLifecycle {
	return &EventLifecycle{
		events: events,
		stats:  stats,
		now:    time.Now,
	}
}

// Create persists the draft directly in pending approval: submission and the
// moderation request are one atomic operation, the transient draft state is
// never observable in the store. The creator's created counter is bumped
// only after the insert succeeds.
func (l *EventLifecycle) Create(ctx context.Context, draft entities.Draft) (*entities.Event, error) {
	event := &entities.Event{
		Title:    draft.Title,
		StartsAt: draft.StartsAt,
		Location: draft.Location,
		Creator:  draft.Creator,
		Status:   entities.StatusPendingApproval,
	}
	if err := l.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	if err := l.stats.Upsert(ctx, draft.Creator); err != nil {
		return nil, fmt.Errorf("upsert creator stats: %w", err)
	}
	if err := l.stats.IncrementCreated(ctx, draft.Creator.ID); err != nil {
		return nil, fmt.Errorf("increment created: %w", err)
	}
	return event, nil
}

// Transition applies a moderator decision. The status write is a single
// compare-and-set keyed on pending approval, so of two concurrent decisions
// exactly one commits; the loser observes domain.ErrConflict.
func (l *EventLifecycle) Transition(ctx context.Context, eventID string, decision entities.Decision) (*entities.Event, error) {
	event, err := l.events.UpdateStatus(ctx, eventID, entities.StatusPendingApproval, decision.TargetStatus())
	if err != nil {
		return nil, err
	}
	if decision == entities.DecisionApprove {
		if err := l.stats.IncrementApproved(ctx, event.Creator.ID); err != nil {
			return nil, fmt.Errorf("increment approved: %w", err)
		}
	}
	return event, nil
}

// RecordPublication stores the community-channel message reference on an
// approved event.
func (l *EventLifecycle) RecordPublication(ctx context.Context, eventID, ref string) error {
	if err := l.events.SetPublicationRef(ctx, eventID, ref); err != nil {
		return fmt.Errorf("set publication ref: %w", err)
	}
	return nil
}

// ListUpcoming returns approved events that have not started yet, soonest
// first. Pending and declined events never leave the moderation path.
func (l *EventLifecycle) ListUpcoming(ctx context.Context) ([]entities.Event, error) {
	return l.events.ListApprovedUpcoming(ctx, l.now())
}

// ListPast returns approved events that already started, most recent first.
func (l *EventLifecycle) ListPast(ctx context.Context) ([]entities.Event, error) {
	return l.events.ListApprovedPast(ctx, l.now())
}
