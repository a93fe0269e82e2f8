package entities

import "time"

// EventStatus is the moderation state of an event.
type EventStatus string

const (
	StatusDraft           EventStatus = "draft"
	StatusPendingApproval EventStatus = "pending_approval"
	StatusApproved        EventStatus = "approved"
	StatusDeclined        EventStatus = "declined"
)

// Decision is a moderator verdict on a pending event.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDecline Decision = "decline"
)

// TargetStatus returns the event status a decision commits.
func (d Decision) TargetStatus() EventStatus {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusDeclined
}

// Creator identifies the user who submitted an event.
type Creator struct {
	ID        string
	Username  string
	FirstName string
}

// DisplayName prefers the handle, then the first name.
func (c Creator) DisplayName() string {
	if c.Username != "" {
		return "@" + c.Username
	}
	return c.FirstName
}

type Event struct {
	ID             string
	Title          string
	Description    string
	StartsAt       time.Time
	Location       Location
	Creator        Creator
	Status         EventStatus
	PublicationRef string // message reference in the community channel, set after approval
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Draft is the fully collected, not-yet-persisted event data produced by a
// completed session.
type Draft struct {
	Title    string
	StartsAt time.Time
	Location Location
	Creator  Creator
}
