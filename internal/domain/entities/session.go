package entities

import "time"

// SessionStep is the ordinal position in the fixed conversation sequence.
type SessionStep int

const (
	StepTitle SessionStep = iota
	StepDateTime
	StepLocation
	StepConfirm
)

func (s SessionStep) String() string {
	switch s {
	case StepTitle:
		return "title"
	case StepDateTime:
		return "datetime"
	case StepLocation:
		return "location"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

// SessionStatus represents the current status of a conversation session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Session is the per-identity conversation state for event submission.
// At most one session exists per identity; it lives only while Active.
type Session struct {
	Identity  string
	Step      SessionStep
	Status    SessionStatus
	Title     string
	StartsAt  time.Time
	Location  Location
	Creator   Creator
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft assembles the collected fields. Only meaningful once the session
// has passed the Location step.
func (s *Session) Draft() Draft {
	return Draft{
		Title:    s.Title,
		StartsAt: s.StartsAt,
		Location: s.Location,
		Creator:  s.Creator,
	}
}
