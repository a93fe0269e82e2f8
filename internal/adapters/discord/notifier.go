package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/ports/output"
)

var _ output.Notifier = (*ChannelNotifier)(nil)

// ChannelNotifier delivers notifications through Discord: direct messages to
// users and publications to the community events channel.
type ChannelNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewChannelNotifier(session *discordgo.Session, channelID string) *ChannelNotifier {
	return &ChannelNotifier{session: session, channelID: channelID}
}

func (n *ChannelNotifier) SendDirect(ctx context.Context, recipient, text string) error {
	ch, err := n.session.UserChannelCreate(recipient, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create DM channel: %w", err)
	}
	if _, err := n.session.ChannelMessageSend(ch.ID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}

func (n *ChannelNotifier) Publish(ctx context.Context, text string) (string, error) {
	msg, err := n.session.ChannelMessageSend(n.channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("publish: %w", err)
	}
	return msg.ID, nil
}

func (n *ChannelNotifier) PublishPoll(ctx context.Context, question string, options []string) error {
	answers := make([]discordgo.PollAnswer, len(options))
	for i, opt := range options {
		answers[i] = discordgo.PollAnswer{Media: &discordgo.PollMedia{Text: opt}}
	}
	_, err := n.session.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Poll: &discordgo.Poll{
			Question: discordgo.PollMedia{Text: question},
			Answers:  answers,
			Duration: 48,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("publish poll: %w", err)
	}
	return nil
}
