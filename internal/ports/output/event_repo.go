package output

import (
	"context"
	"time"

	"eventbot/internal/domain/entities"
)

type EventRepository interface {
	// Create persists the event and assigns its ID and timestamps.
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// UpdateStatus performs a compare-and-set on the status field: the write
	// commits only when the stored status still equals from. It returns
	// domain.ErrConflict when the guard fails and domain.ErrEventNotFound
	// when no such event exists.
	UpdateStatus(ctx context.Context, id string, from, to entities.EventStatus) (*entities.Event, error)
	SetPublicationRef(ctx context.Context, id, ref string) error
	// ListApprovedUpcoming returns approved events with starts_at >= now,
	// ascending by starts_at.
	ListApprovedUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error)
	// ListApprovedPast returns approved events with starts_at < now,
	// descending by starts_at.
	ListApprovedPast(ctx context.Context, now time.Time) ([]entities.Event, error)
}
