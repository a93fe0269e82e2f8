package application

import (
	"context"
	"errors"
	"log"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
)

var _ input.ModerationUseCase = (*ModerationDispatcher)(nil)

// ModerationDispatcher binds a moderator decision to an event and fans out
// the resulting notifications and publication. Side effects run only after
// the transition has committed; a send failure is logged, never rolled back.
type ModerationDispatcher struct {
	lifecycle input.EventUseCase
	notifier  output.Notifier
	renderer  output.Renderer
	texts     output.T
	locale    string
	// pollOnApprove posts the attendance poll after publication.
	pollOnApprove bool
}

func NewModerationDispatcher(
	lifecycle input.EventUseCase,
	notifier output.Notifier,
	renderer output.Renderer,
	texts output.T,
	locale string,
	pollOnApprove bool,
) *ModerationDispatcher {
	return &ModerationDispatcher{
		lifecycle:     lifecycle,
		notifier:      notifier,
		renderer:      renderer,
		texts:         texts,
		locale:        locale,
		pollOnApprove: pollOnApprove,
	}
}

// Dispatch applies the decision exactly once. A stale or repeated decision
// yields AlreadyProcessed instead of an error: from the moderator's point of
// view "not found" and "already decided" are the same idempotent no-op.
func (d *ModerationDispatcher) Dispatch(ctx context.Context, action input.DecisionAction) (input.ModerationOutcome, error) {
	event, err := d.lifecycle.Transition(ctx, action.EventID, action.Decision)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) || errors.Is(err, domain.ErrConflict) {
			return input.ModerationOutcome{AlreadyProcessed: true}, nil
		}
		return input.ModerationOutcome{}, err
	}

	switch action.Decision {
	case entities.DecisionApprove:
		d.fanOutApproval(ctx, event)
	case entities.DecisionDecline:
		d.notifyCreator(ctx, event, "moderation.declined")
	}
	return input.ModerationOutcome{Event: event}, nil
}

// fanOutApproval notifies the creator, publishes the event (optionally with
// the attendance poll) and records the publication reference. The transition
// is already committed here, so each failure is reported and skipped.
func (d *ModerationDispatcher) fanOutApproval(ctx context.Context, event *entities.Event) {
	d.notifyCreator(ctx, event, "moderation.approved")

	rendered := d.renderer.RenderEvent(event, d.locale)
	ref, err := d.notifier.Publish(ctx, rendered)
	if err != nil {
		log.Printf("⚠️ publish failed (event=%s): %v", event.ID, err)
		return
	}
	if err := d.lifecycle.RecordPublication(ctx, event.ID, ref); err != nil {
		log.Printf("⚠️ record publication failed (event=%s, ref=%s): %v", event.ID, ref, err)
	}
	event.PublicationRef = ref

	if d.pollOnApprove {
		question := d.texts.T(d.locale, "poll.question", map[string]any{"Title": event.Title})
		options := []string{
			d.texts.T(d.locale, "poll.option_yes", nil),
			d.texts.T(d.locale, "poll.option_maybe", nil),
		}
		if err := d.notifier.PublishPoll(ctx, question, options); err != nil {
			log.Printf("⚠️ publish poll failed (event=%s): %v", event.ID, err)
		}
	}
}

func (d *ModerationDispatcher) notifyCreator(ctx context.Context, event *entities.Event, key string) {
	text := d.texts.T(d.locale, key, map[string]any{
		"Event": d.renderer.RenderEvent(event, d.locale),
	})
	if err := d.notifier.SendDirect(ctx, event.Creator.ID, text); err != nil {
		log.Printf("⚠️ notify creator failed (event=%s, creator=%s): %v", event.ID, event.Creator.ID, err)
	}
}
