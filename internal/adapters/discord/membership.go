package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/ports/output"
)

var _ output.MembershipGate = (*GuildMembershipGate)(nil)

// GuildMembershipGate checks membership against the community guild.
type GuildMembershipGate struct {
	session *discordgo.Session
	guildID string
}

func NewGuildMembershipGate(session *discordgo.Session, guildID string) *GuildMembershipGate {
	return &GuildMembershipGate{session: session, guildID: guildID}
}

func (g *GuildMembershipGate) IsMember(ctx context.Context, identity string) (bool, error) {
	member, err := g.session.GuildMember(g.guildID, identity, discordgo.WithContext(ctx))
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Message != nil &&
			restErr.Message.Code == discordgo.ErrCodeUnknownMember {
			return false, nil
		}
		return false, err
	}
	return member != nil, nil
}
