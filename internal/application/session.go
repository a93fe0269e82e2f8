package application

import (
	"strings"
	"sync"
	"time"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
	"eventbot/pkg/chat"
)

var _ input.SessionUseCase = (*SessionEngine)(nil)

// SessionEngine owns per-identity conversation state and step progression.
// Mutation is serialized per identity, so interleaved turns from the same
// user never race on the same session.
type SessionEngine struct {
	mu       sync.Mutex // guards sessions
	locks    sync.Map   // identity -> *sync.Mutex
	sessions map[string]*entities.Session
	now      func() time.Time
}

func NewSessionEngine() *SessionEngine {
	return &SessionEngine{
		sessions: make(map[string]*entities.Session),
		now:      time.Now,
	}
}

func (e *SessionEngine) lockFor(identity string) *sync.Mutex {
	l, _ := e.locks.LoadOrStore(identity, &sync.Mutex{})
	return l.(*sync.Mutex)
}

func (e *SessionEngine) load(identity string) *entities.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[identity]
}

func (e *SessionEngine) store(s *entities.Session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[s.Identity] = s
}

func (e *SessionEngine) remove(identity string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, identity)
}

// Start creates a fresh session for identity at the title step. An existing
// session is discarded outright, never merged.
func (e *SessionEngine) Start(identity string) entities.SessionStep {
	l := e.lockFor(identity)
	l.Lock()
	defer l.Unlock()

	now := e.now()
	e.store(&entities.Session{
		Identity:  identity,
		Step:      entities.StepTitle,
		Status:    entities.SessionActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return entities.StepTitle
}

// Cancel discards the active session for identity, if any.
func (e *SessionEngine) Cancel(identity string) bool {
	l := e.lockFor(identity)
	l.Lock()
	defer l.Unlock()

	if e.load(identity) == nil {
		return false
	}
	e.remove(identity)
	return true
}

// SubmitInput feeds one conversation turn into the active session. A
// validation failure leaves the session untouched so retrying the same step
// is always safe.
func (e *SessionEngine) SubmitInput(identity string, in input.StepInput) (input.StepResult, error) {
	l := e.lockFor(identity)
	l.Lock()
	defer l.Unlock()

	s := e.load(identity)
	if s == nil || s.Status != entities.SessionActive {
		return input.StepResult{}, domain.ErrNoActiveSession
	}

	switch s.Step {
	case entities.StepTitle:
		title := strings.TrimSpace(in.Text)
		if title == "" {
			return input.StepResult{Step: s.Step}, domain.Validation("title_required")
		}
		s.Title = title
		s.Step = entities.StepDateTime

	case entities.StepDateTime:
		startsAt, err := chat.ParseDateTime(in.Text)
		if err != nil {
			return input.StepResult{Step: s.Step}, domain.Validation("datetime_invalid")
		}
		s.StartsAt = startsAt
		s.Step = entities.StepLocation

	case entities.StepLocation:
		switch {
		case in.Coordinates != nil:
			s.Location = entities.CoordinateLocation(in.Coordinates.Lat, in.Coordinates.Lon)
		case strings.TrimSpace(in.Text) != "":
			s.Location = entities.AddressLocation(strings.TrimSpace(in.Text))
		default:
			return input.StepResult{Step: s.Step}, domain.Validation("location_required")
		}
		// Last opportunity to capture the creator before finalization.
		s.Creator = in.From
		s.Step = entities.StepConfirm

	case entities.StepConfirm:
		switch strings.ToLower(strings.TrimSpace(in.Text)) {
		case input.TokenConfirm:
			s.Status = entities.SessionCompleted
			e.remove(identity)
			draft := s.Draft()
			return input.StepResult{Step: s.Step, Completed: true, Draft: &draft}, nil
		case input.TokenCancel:
			s.Status = entities.SessionCancelled
			e.remove(identity)
			return input.StepResult{Step: s.Step, Cancelled: true}, nil
		default:
			preview := s.Draft()
			return input.StepResult{Step: s.Step, Preview: &preview}, domain.Validation("confirm_required")
		}
	}

	s.UpdatedAt = e.now()
	res := input.StepResult{Step: s.Step}
	if s.Step == entities.StepConfirm {
		preview := s.Draft()
		res.Preview = &preview
	}
	return res, nil
}

// SweepIdle destroys sessions whose last activity is older than ttl.
// Abandoned conversations would otherwise accumulate indefinitely.
func (e *SessionEngine) SweepIdle(ttl time.Duration) int {
	cutoff := e.now().Add(-ttl)

	e.mu.Lock()
	stale := make([]string, 0, len(e.sessions))
	for identity, s := range e.sessions {
		if s.UpdatedAt.Before(cutoff) {
			stale = append(stale, identity)
		}
	}
	e.mu.Unlock()

	removed := 0
	for _, identity := range stale {
		l := e.lockFor(identity)
		l.Lock()
		if s := e.load(identity); s != nil && s.UpdatedAt.Before(cutoff) {
			e.remove(identity)
			removed++
		}
		l.Unlock()
	}
	return removed
}
