package discord

import (
	"context"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/domain/entities"
)

// checkMembership gates a command on community membership. It responds to
// the interaction itself when access is denied.
func (h *Handler) checkMembership(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	userID := interactionUser(i).ID
	ok, err := h.gate.IsMember(context.Background(), userID)
	if err != nil {
		log.Printf("❌ membership check failed (user=%s): %v", userID, err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return false
	}
	if !ok {
		respondEphemeral(s, i.Interaction, h.translate("errors.not_member", nil))
		return false
	}
	return true
}

// abortSession discards any wizard in progress. Every command resets the
// conversation first, like the original /restart behavior.
func (h *Handler) abortSession(userID string) {
	if h.sessions.Cancel(userID) {
		h.metrics.SessionsCancelled.Inc()
	}
}

// HandleCreate starts the event submission wizard in the user's DMs.
func (h *Handler) HandleCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.checkMembership(s, i) {
		return
	}
	userID := interactionUser(i).ID

	ch, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("❌ DM channel failed (user=%s): %v", userID, err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}

	h.sessions.Start(userID)
	h.metrics.SessionsStarted.Inc()

	if _, err := s.ChannelMessageSend(ch.ID, h.translate("prompt.title", nil)); err != nil {
		log.Printf("❌ DM send failed (user=%s): %v", userID, err)
		h.sessions.Cancel(userID)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.translate("session.check_dm", nil))
}

// HandleEvents shows upcoming approved events.
func (h *Handler) HandleEvents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.checkMembership(s, i) {
		return
	}
	h.abortSession(interactionUser(i).ID)

	events, err := h.events.ListUpcoming(context.Background())
	if err != nil {
		log.Printf("❌ list upcoming failed: %v", err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}
	h.respondEventList(s, i, events, "events.upcoming_header", "events.upcoming_empty")
}

// HandlePast shows past approved events.
func (h *Handler) HandlePast(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.checkMembership(s, i) {
		return
	}
	h.abortSession(interactionUser(i).ID)

	events, err := h.events.ListPast(context.Background())
	if err != nil {
		log.Printf("❌ list past failed: %v", err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}
	h.respondEventList(s, i, events, "events.past_header", "events.past_empty")
}

func (h *Handler) respondEventList(s *discordgo.Session, i *discordgo.InteractionCreate, events []entities.Event, headerKey, emptyKey string) {
	if len(events) == 0 {
		respondEphemeral(s, i.Interaction, h.translate(emptyKey, nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(headerKey, map[string]any{"Count": len(events)}))
	for idx := range events {
		_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: h.renderer.RenderEvent(&events[idx], h.locale),
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		if err != nil {
			log.Printf("⚠️ event list followup failed: %v", err)
			return
		}
	}
}

var medals = [...]string{"🥇 ", "🥈 ", "🥉 "}

// HandleLeaderboard shows the top event organizers.
func (h *Handler) HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.checkMembership(s, i) {
		return
	}
	h.abortSession(interactionUser(i).ID)

	entries, err := h.leaderboard.Rank(context.Background(), 10)
	if err != nil {
		log.Printf("❌ leaderboard failed: %v", err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}
	if len(entries) == 0 {
		respondEphemeral(s, i.Interaction, h.translate("leaderboard.empty", nil))
		return
	}

	content := h.translate("leaderboard.header", nil) + "\n\n"
	for _, entry := range entries {
		medal := ""
		if entry.Rank <= len(medals) {
			medal = medals[entry.Rank-1]
		}
		name := entry.Stats.DisplayName()
		if name == "" {
			name = h.translate("event.anonymous", nil)
		}
		content += h.translate("leaderboard.entry", map[string]any{
			"Medal":    medal,
			"Rank":     strconv.Itoa(entry.Rank),
			"Name":     name,
			"Created":  strconv.Itoa(entry.Stats.EventsCreated),
			"Approved": strconv.Itoa(entry.Stats.EventsApproved),
		}) + "\n"
	}
	respondEphemeral(s, i.Interaction, content)
}

// HandleCancel aborts the wizard in progress.
func (h *Handler) HandleCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUser(i).ID
	if h.sessions.Cancel(userID) {
		h.metrics.SessionsCancelled.Inc()
		respondEphemeral(s, i.Interaction, h.translate("session.cancelled", nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.translate("errors.no_active_session", nil))
}

// HandleHelp shows command help.
func (h *Handler) HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.abortSession(interactionUser(i).ID)
	respondEphemeral(s, i.Interaction, h.translate("help.text", nil))
}
