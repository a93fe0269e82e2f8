package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
)

const moderationPrefix = "mod:"

// decisionCustomID encodes a typed decision as a component ID:
// mod:<decision>:<eventID>.
func decisionCustomID(decision entities.Decision, eventID string) string {
	return fmt.Sprintf("%s%s:%s", moderationPrefix, decision, eventID)
}

// ParseDecision parses a moderation component ID back into a typed action.
// This is the only place the wire format is interpreted.
func ParseDecision(customID string) (input.DecisionAction, bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0]+":" != moderationPrefix || parts[2] == "" {
		return input.DecisionAction{}, false
	}
	decision := entities.Decision(parts[1])
	if decision != entities.DecisionApprove && decision != entities.DecisionDecline {
		return input.DecisionAction{}, false
	}
	return input.DecisionAction{EventID: parts[2], Decision: decision}, true
}

// sendModerationRequest DMs the moderator the pending event with
// approve/decline buttons.
func (h *Handler) sendModerationRequest(s *discordgo.Session, event *entities.Event) error {
	ch, err := s.UserChannelCreate(h.moderatorID)
	if err != nil {
		return fmt.Errorf("create moderator DM: %w", err)
	}
	content := h.translate("moderation.new_submission", map[string]any{
		"Event": h.renderer.RenderEvent(event, h.locale),
	})
	_, err = s.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    h.translate("button.approve", nil),
					Style:    discordgo.SuccessButton,
					CustomID: decisionCustomID(entities.DecisionApprove, event.ID),
				},
				discordgo.Button{
					Label:    h.translate("button.decline", nil),
					Style:    discordgo.DangerButton,
					CustomID: decisionCustomID(entities.DecisionDecline, event.ID),
				},
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("send moderation request: %w", err)
	}
	return nil
}

// HandleModeration applies an approve/decline button press. The decision is
// parsed once here; the dispatcher guarantees it commits at most once.
func (h *Handler) HandleModeration(s *discordgo.Session, i *discordgo.InteractionCreate) {
	action, ok := ParseDecision(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	action.Moderator = interactionUser(i).ID

	outcome, err := h.moderation.Dispatch(context.Background(), action)
	if err != nil {
		log.Printf("❌ moderation dispatch failed (event=%s, decision=%s): %v",
			action.EventID, action.Decision, err)
		// Keep the buttons so the moderator can retry.
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}
	if outcome.AlreadyProcessed {
		respondUpdate(s, i.Interaction, h.translate("errors.already_processed", nil))
		return
	}

	ackKey := "moderation.ack_declined"
	if action.Decision == entities.DecisionApprove {
		ackKey = "moderation.ack_approved"
		h.metrics.EventsApproved.Inc()
	} else {
		h.metrics.EventsDeclined.Inc()
	}
	respondUpdate(s, i.Interaction, h.translate(ackKey, map[string]any{
		"Event": h.renderer.RenderEvent(outcome.Event, h.locale),
	}))
}
