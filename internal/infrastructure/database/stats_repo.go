package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/output"
)

var _ output.UserStatsRepository = (*UserStatsRepository)(nil)

// UserStatsRepository persists per-creator counters in PostgreSQL.
type UserStatsRepository struct {
	pool *pgxpool.Pool
}

func NewUserStatsRepository(pool *pgxpool.Pool) *UserStatsRepository {
	return &UserStatsRepository{pool: pool}
}

// Upsert creates the record on first sight of a creator and refreshes the
// display fields afterwards. Counters are never touched here.
func (r *UserStatsRepository) Upsert(ctx context.Context, creator entities.Creator) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_stats (user_id, username, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    first_name = EXCLUDED.first_name,
		    updated_at = now()`,
		creator.ID, creator.Username, creator.FirstName)
	if err != nil {
		return fmt.Errorf("upsert user stats: %w", err)
	}
	return nil
}

func (r *UserStatsRepository) IncrementCreated(ctx context.Context, identity string) error {
	return r.increment(ctx, "events_created", identity)
}

func (r *UserStatsRepository) IncrementApproved(ctx context.Context, identity string) error {
	return r.increment(ctx, "events_approved", identity)
}

func (r *UserStatsRepository) increment(ctx context.Context, column, identity string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE user_stats SET `+column+` = `+column+` + 1, updated_at = now() WHERE user_id = $1`,
		identity)
	if err != nil {
		return fmt.Errorf("increment %s: %w", column, err)
	}
	return nil
}

func (r *UserStatsRepository) TopByApproved(ctx context.Context, limit int) ([]entities.UserStats, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, username, first_name, events_created, events_approved, created_at, updated_at
		FROM user_stats
		WHERE events_approved > 0
		ORDER BY events_approved DESC, events_created DESC, created_at ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top by approved: %w", err)
	}
	defer rows.Close()

	var out []entities.UserStats
	for rows.Next() {
		var s entities.UserStats
		if err := rows.Scan(&s.Identity, &s.Username, &s.FirstName,
			&s.EventsCreated, &s.EventsApproved, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user stats: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top by approved: %w", err)
	}
	return out, nil
}
