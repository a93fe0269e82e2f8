package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/application"
	"eventbot/internal/config"
	"eventbot/internal/infrastructure/metrics"
	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	eventRepo output.EventRepository,
	statsRepo output.UserStatsRepository,
	texts output.T,
	m *metrics.Metrics,
) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Failed to create the Discord session:", err)
	}
	// The wizard runs over DMs, so message content is required.
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	renderer := NewEventRenderer(texts)
	notifier := NewChannelNotifier(s, cfg.EventsChannelID)
	gate := NewGuildMembershipGate(s, cfg.GuildID)

	engine := application.NewSessionEngine()
	lifecycle := application.NewEventLifecycle(eventRepo, statsRepo)
	dispatcher := application.NewModerationDispatcher(
		lifecycle, notifier, renderer, texts, cfg.DefaultLocale, cfg.PollOnApprove)
	board := application.NewLeaderboardAggregator(statsRepo)

	handler := NewHandler(engine, lifecycle, dispatcher, board,
		gate, renderer, texts, m, cfg.DefaultLocale, cfg.ModeratorUserID)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleMessage)
}

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State.User != nil && m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}
	b.handler.HandleDirectMessage(s, m)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "event":
			b.handler.HandleCreate(s, i)
		case "events":
			b.handler.HandleEvents(s, i)
		case "past":
			b.handler.HandlePast(s, i)
		case "leaderboard":
			b.handler.HandleLeaderboard(s, i)
		case "cancel":
			b.handler.HandleCancel(s, i)
		case "help":
			b.handler.HandleHelp(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case customID == wizardConfirmID:
			b.handler.HandleWizardDecision(s, i, input.TokenConfirm)
		case customID == wizardCancelID:
			b.handler.HandleWizardDecision(s, i, input.TokenCancel)
		case strings.HasPrefix(customID, moderationPrefix):
			b.handler.HandleModeration(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open the session: %w", err)
	}
	defer b.session.Close()

	commands := []*discordgo.ApplicationCommand{
		{Name: "event", Description: "Create a new event"},
		{Name: "events", Description: "Show upcoming events"},
		{Name: "past", Description: "Show past events"},
		{Name: "leaderboard", Description: "Show top event organizers"},
		{Name: "cancel", Description: "Abort the event draft in progress"},
		{Name: "help", Description: "Show help"},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Failed to register command %s: %v", cmd.Name, err)
		}
	}

	go b.handler.RunScheduledTasks(b.config.SessionTTL)

	fmt.Println("🤖 Bot is online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
