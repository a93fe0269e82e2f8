package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
	"eventbot/pkg/chat"
)

// Wizard confirm-step component IDs.
const (
	wizardConfirmID = "wizard:confirm"
	wizardCancelID  = "wizard:cancel"
)

// HandleDirectMessage feeds a DM into the submission wizard. Messages
// outside a DM channel or from bots are ignored.
func (h *Handler) HandleDirectMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}
	identity := m.Author.ID

	in := input.StepInput{
		Text: m.Content,
		From: entities.Creator{
			ID:        identity,
			Username:  m.Author.Username,
			FirstName: resolveDisplayName(m.Author),
		},
	}
	if lat, lon, ok := chat.ParseCoordinates(m.Content); ok {
		in.Coordinates = &input.Coordinates{Lat: lat, Lon: lon}
	}

	res, err := h.sessions.SubmitInput(identity, in)
	switch {
	case errors.Is(err, domain.ErrNoActiveSession):
		h.send(s, m.ChannelID, h.translate("errors.no_active_session", nil))
	case domain.IsValidation(err):
		content := h.translate("errors."+domain.Code(err), nil)
		if res.Step == entities.StepConfirm {
			// Reissue the confirm prompt, buttons included.
			h.sendWithComponents(s, m.ChannelID, content, h.confirmComponents())
			return
		}
		h.send(s, m.ChannelID, content)
	case err != nil:
		log.Printf("❌ wizard input failed (user=%s): %v", identity, err)
		h.send(s, m.ChannelID, h.translate("errors.generic", nil))
	default:
		h.advanceWizard(s, m.ChannelID, res)
	}
}

// HandleWizardDecision handles the confirm/cancel buttons on the preview
// message. token is the decision token the button carries.
func (h *Handler) HandleWizardDecision(s *discordgo.Session, i *discordgo.InteractionCreate, token string) {
	user := interactionUser(i)
	res, err := h.sessions.SubmitInput(user.ID, input.StepInput{
		Text: token,
		From: entities.Creator{
			ID:        user.ID,
			Username:  user.Username,
			FirstName: resolveDisplayName(user),
		},
	})
	switch {
	case errors.Is(err, domain.ErrNoActiveSession):
		// Stale buttons from a discarded session.
		respondUpdate(s, i.Interaction, h.translate("errors.no_active_session", nil))
	case err != nil:
		respondUpdate(s, i.Interaction, h.translate("errors.generic", nil))
	case res.Completed:
		respondUpdate(s, i.Interaction, h.completeDraft(s, *res.Draft))
	case res.Cancelled:
		h.metrics.SessionsCancelled.Inc()
		respondUpdate(s, i.Interaction, h.translate("session.cancelled", nil))
	}
}

func (h *Handler) advanceWizard(s *discordgo.Session, channelID string, res input.StepResult) {
	switch {
	case res.Completed:
		h.send(s, channelID, h.completeDraft(s, *res.Draft))
	case res.Cancelled:
		h.metrics.SessionsCancelled.Inc()
		h.send(s, channelID, h.translate("session.cancelled", nil))
	default:
		switch res.Step {
		case entities.StepDateTime:
			h.send(s, channelID, h.translate("prompt.datetime", nil))
		case entities.StepLocation:
			h.send(s, channelID, h.translate("prompt.location", nil))
		case entities.StepConfirm:
			h.sendConfirmPrompt(s, channelID, res.Preview)
		default:
			h.send(s, channelID, h.translate("prompt.title", nil))
		}
	}
}

// completeDraft persists the confirmed draft and routes it to moderation.
// It returns the text to show the submitter.
func (h *Handler) completeDraft(s *discordgo.Session, draft entities.Draft) string {
	event, err := h.events.Create(context.Background(), draft)
	if err != nil {
		log.Printf("❌ create event failed (creator=%s): %v", draft.Creator.ID, err)
		return h.translate("errors.generic", nil)
	}
	h.metrics.SessionsCompleted.Inc()
	h.metrics.EventsCreated.Inc()

	if err := h.sendModerationRequest(s, event); err != nil {
		log.Printf("⚠️ moderation request failed (event=%s): %v", event.ID, err)
	}
	return h.translate("session.submitted", nil)
}

func (h *Handler) sendConfirmPrompt(s *discordgo.Session, channelID string, preview *entities.Draft) {
	content := h.translate("prompt.confirm", map[string]any{
		"Event": h.renderer.RenderEvent(draftEvent(preview), h.locale),
	})
	h.sendWithComponents(s, channelID, content, h.confirmComponents())
}

func (h *Handler) confirmComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: h.translate("button.confirm", nil), Style: discordgo.SuccessButton, CustomID: wizardConfirmID},
			discordgo.Button{Label: h.translate("button.cancel", nil), Style: discordgo.DangerButton, CustomID: wizardCancelID},
		}},
	}
}

// draftEvent adapts collected session fields for preview rendering.
func draftEvent(d *entities.Draft) *entities.Event {
	return &entities.Event{
		Title:    d.Title,
		StartsAt: d.StartsAt,
		Location: d.Location,
		Creator:  d.Creator,
		Status:   entities.StatusDraft,
	}
}

func (h *Handler) send(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("⚠️ DM send failed (channel=%s): %v", channelID, err)
	}
}

func (h *Handler) sendWithComponents(s *discordgo.Session, channelID, content string, components []discordgo.MessageComponent) {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    content,
		Components: components,
	})
	if err != nil {
		log.Printf("⚠️ DM send failed (channel=%s): %v", channelID, err)
	}
}
