package input

import (
	"time"

	"eventbot/internal/domain/entities"
)

// Confirm-step decision tokens. Any other input at that step is rejected.
const (
	TokenConfirm = "confirm"
	TokenCancel  = "cancel"
)

// Coordinates is a structured latitude/longitude pair supplied at the
// location step.
type Coordinates struct {
	Lat float64
	Lon float64
}

// StepInput is one conversation turn. Text is always the raw message text;
// Coordinates is set when the transport delivered a structured pair.
type StepInput struct {
	Text        string
	Coordinates *Coordinates
	// From identifies the sender; captured into the draft at the
	// location step.
	From entities.Creator
}

// StepResult describes the session state after a turn.
type StepResult struct {
	// Step is the step to prompt for next. On a validation failure it is
	// the unchanged current step.
	Step entities.SessionStep
	// Completed is set when the session finished with a confirmed draft.
	Completed bool
	// Cancelled is set when the session was explicitly cancelled.
	Cancelled bool
	// Draft holds the assembled event data when Completed.
	Draft *entities.Draft
	// Preview holds the collected fields at the confirm step so the
	// caller can render them back to the user.
	Preview *entities.Draft
}

type SessionUseCase interface {
	// Start creates a fresh session for identity, discarding any previous
	// one, and returns the first step to prompt for.
	Start(identity string) entities.SessionStep
	// SubmitInput feeds one turn into the active session.
	SubmitInput(identity string, in StepInput) (StepResult, error)
	// Cancel discards the active session, if any.
	Cancel(identity string) bool
	// SweepIdle destroys sessions idle longer than ttl and returns how
	// many were removed.
	SweepIdle(ttl time.Duration) int
}
