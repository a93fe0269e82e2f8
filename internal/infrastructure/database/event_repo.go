package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

const eventColumns = `id, title, description, starts_at,
	location_kind, location_address, location_lat, location_lon,
	creator_id, creator_username, creator_first_name,
	status, publication_ref, created_at, updated_at`

// EventRepository persists events in PostgreSQL. The pool is owned by the
// caller and must not be closed here.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	event.ID = ulid.Make().String()
	address, lat, lon := locationColumns(event.Location)

	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (
			id, title, description, starts_at,
			location_kind, location_address, location_lat, location_lon,
			creator_id, creator_username, creator_first_name,
			status, publication_ref
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, '')
		RETURNING created_at, updated_at`,
		event.ID, event.Title, event.Description, event.StartsAt,
		string(event.Location.Kind), address, lat, lon,
		event.Creator.ID, event.Creator.Username, event.Creator.FirstName,
		string(event.Status),
	)
	if err := row.Scan(&event.CreatedAt, &event.UpdatedAt); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return event, nil
}

// UpdateStatus is the compare-and-set transition: the UPDATE commits only
// when the stored status still equals from, so exactly one of two concurrent
// decisions wins.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, from, to entities.EventStatus) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE events SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+eventColumns,
		id, string(from), string(to),
	)
	event, err := scanEvent(row)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update event status: %w", err)
	}

	// Guard failed: distinguish a missing event from an already decided one.
	var current string
	err = r.pool.QueryRow(ctx, `SELECT status FROM events WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("check event status: %w", err)
	}
	return nil, domain.ErrConflict
}

func (r *EventRepository) SetPublicationRef(ctx context.Context, id, ref string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET publication_ref = $2, updated_at = now() WHERE id = $1`,
		id, ref)
	if err != nil {
		return fmt.Errorf("set publication ref: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) ListApprovedUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error) {
	return r.listApproved(ctx, `starts_at >= $2 ORDER BY starts_at ASC`, now)
}

func (r *EventRepository) ListApprovedPast(ctx context.Context, now time.Time) ([]entities.Event, error) {
	return r.listApproved(ctx, `starts_at < $2 ORDER BY starts_at DESC`, now)
}

func (r *EventRepository) listApproved(ctx context.Context, clause string, now time.Time) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE status = $1 AND `+clause,
		string(entities.StatusApproved), now)
	if err != nil {
		return nil, fmt.Errorf("list approved events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list approved events: %w", err)
	}
	return out, nil
}

func locationColumns(l entities.Location) (address *string, lat, lon *float64) {
	switch l.Kind {
	case entities.LocationAddress:
		address = &l.Address
	case entities.LocationCoordinates:
		lat, lon = &l.Lat, &l.Lon
	}
	return address, lat, lon
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e       entities.Event
		kind    string
		status  string
		address *string
		lat     *float64
		lon     *float64
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartsAt,
		&kind, &address, &lat, &lon,
		&e.Creator.ID, &e.Creator.Username, &e.Creator.FirstName,
		&status, &e.PublicationRef, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = entities.EventStatus(status)
	switch entities.LocationKind(kind) {
	case entities.LocationAddress:
		if address != nil {
			e.Location = entities.AddressLocation(*address)
		}
	case entities.LocationCoordinates:
		if lat != nil && lon != nil {
			e.Location = entities.CoordinateLocation(*lat, *lon)
		}
	}
	return &e, nil
}
