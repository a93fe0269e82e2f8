package discord

import (
	"strings"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/output"
	"eventbot/pkg/chat"
)

var _ output.Renderer = (*EventRenderer)(nil)

// EventRenderer formats an event for chat display. All labels go through the
// translator; the event data itself stays structured until this point.
type EventRenderer struct {
	texts output.T
}

func NewEventRenderer(texts output.T) *EventRenderer {
	return &EventRenderer{texts: texts}
}

func (r *EventRenderer) RenderEvent(event *entities.Event, locale string) string {
	host := event.Creator.DisplayName()
	if host == "" {
		host = r.texts.T(locale, "event.anonymous", nil)
	}

	var b strings.Builder
	b.WriteString("**" + event.Title + "**\n\n")
	b.WriteString(r.texts.T(locale, "event.when", nil) + " " + chat.FormatDateTime(event.StartsAt) + "\n")
	b.WriteString(r.texts.T(locale, "event.where", nil) + " " + chat.FormatLocation(event.Location) + "\n")
	b.WriteString(r.texts.T(locale, "event.host", nil) + " " + host)
	if event.Description != "" {
		b.WriteString("\n\n" + event.Description)
	}
	return b.String()
}
