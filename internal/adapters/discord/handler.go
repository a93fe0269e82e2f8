package discord

import (
	"eventbot/internal/infrastructure/metrics"
	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	sessions    input.SessionUseCase
	events      input.EventUseCase
	moderation  input.ModerationUseCase
	leaderboard input.LeaderboardUseCase
	gate        output.MembershipGate
	renderer    output.Renderer
	texts       output.T
	metrics     *metrics.Metrics

	locale      string
	moderatorID string
}

// NewHandler creates a Handler.
func NewHandler(
	sessions input.SessionUseCase,
	events input.EventUseCase,
	moderation input.ModerationUseCase,
	leaderboard input.LeaderboardUseCase,
	gate output.MembershipGate,
	renderer output.Renderer,
	texts output.T,
	m *metrics.Metrics,
	locale string,
	moderatorID string,
) *Handler {
	return &Handler{
		sessions:    sessions,
		events:      events,
		moderation:  moderation,
		leaderboard: leaderboard,
		gate:        gate,
		renderer:    renderer,
		texts:       texts,
		metrics:     m,
		locale:      locale,
		moderatorID: moderatorID,
	}
}

func (h *Handler) translate(key string, data map[string]any) string {
	return h.texts.T(h.locale, key, data)
}
