package output

import "eventbot/internal/domain/entities"

// Renderer produces the human-readable representation of an event for the
// given locale. The core only passes structured data; it never formats text.
type Renderer interface {
	RenderEvent(event *entities.Event, locale string) string
}
