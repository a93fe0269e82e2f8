package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
)

// fakeEventRepo is an in-memory EventRepository for tests. UpdateStatus
// performs a real compare-and-set under a mutex so concurrency tests mean
// something.
type fakeEventRepo struct {
	mu        sync.Mutex
	byID      map[string]*entities.Event
	nextID    int
	createErr error
	refErr    error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[string]*entities.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *entities.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id string, from, to entities.EventStatus) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if e.Status != from {
		return nil, domain.ErrConflict
	}
	e.Status = to
	e.UpdatedAt = time.Now()
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) SetPublicationRef(ctx context.Context, id, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refErr != nil {
		return f.refErr
	}
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.PublicationRef = ref
	return nil
}

func (f *fakeEventRepo) ListApprovedUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error) {
	return f.listApproved(func(e *entities.Event) bool { return !e.StartsAt.Before(now) }, true), nil
}

func (f *fakeEventRepo) ListApprovedPast(ctx context.Context, now time.Time) ([]entities.Event, error) {
	return f.listApproved(func(e *entities.Event) bool { return e.StartsAt.Before(now) }, false), nil
}

func (f *fakeEventRepo) listApproved(match func(*entities.Event) bool, asc bool) []entities.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Event
	for _, e := range f.byID {
		if e.Status == entities.StatusApproved && match(e) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].StartsAt.After(out[j].StartsAt)
	})
	return out
}

// fakeStatsRepo is an in-memory UserStatsRepository for tests.
type fakeStatsRepo struct {
	mu        sync.Mutex
	byID      map[string]*entities.UserStats
	seq       int
	upsertErr error
	incErr    error
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{byID: make(map[string]*entities.UserStats)}
}

func (f *fakeStatsRepo) Upsert(ctx context.Context, c entities.Creator) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if s, ok := f.byID[c.ID]; ok {
		s.Username, s.FirstName = c.Username, c.FirstName
		return nil
	}
	f.seq++
	f.byID[c.ID] = &entities.UserStats{
		Identity:  c.ID,
		Username:  c.Username,
		FirstName: c.FirstName,
		CreatedAt: time.Unix(int64(f.seq), 0),
	}
	return nil
}

// seed inserts a stats record directly, bypassing the counters-only contract.
func (f *fakeStatsRepo) seed(identity, username string, created, approved int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.byID[identity] = &entities.UserStats{
		Identity:       identity,
		Username:       username,
		EventsCreated:  created,
		EventsApproved: approved,
		CreatedAt:      time.Unix(int64(f.seq), 0),
	}
}

func (f *fakeStatsRepo) IncrementCreated(ctx context.Context, identity string) error {
	return f.increment(identity, func(s *entities.UserStats) { s.EventsCreated++ })
}

func (f *fakeStatsRepo) IncrementApproved(ctx context.Context, identity string) error {
	return f.increment(identity, func(s *entities.UserStats) { s.EventsApproved++ })
}

func (f *fakeStatsRepo) increment(identity string, bump func(*entities.UserStats)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incErr != nil {
		return f.incErr
	}
	if s, ok := f.byID[identity]; ok {
		bump(s)
	}
	return nil
}

func (f *fakeStatsRepo) TopByApproved(ctx context.Context, limit int) ([]entities.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.UserStats
	for _, s := range f.byID {
		if s.EventsApproved > 0 {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventsApproved != out[j].EventsApproved {
			return out[i].EventsApproved > out[j].EventsApproved
		}
		if out[i].EventsCreated != out[j].EventsCreated {
			return out[i].EventsCreated > out[j].EventsCreated
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeNotifier records every delivery attempt.
type fakeNotifier struct {
	mu         sync.Mutex
	directs    []string // "recipient|text"
	published  []string
	polls      []string
	directErr  error
	publishErr error
	pollErr    error
	refSeq     int
}

func (f *fakeNotifier) SendDirect(ctx context.Context, recipient, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.directErr != nil {
		return f.directErr
	}
	f.directs = append(f.directs, recipient+"|"+text)
	return nil
}

func (f *fakeNotifier) Publish(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return "", f.publishErr
	}
	f.published = append(f.published, text)
	f.refSeq++
	return fmt.Sprintf("msg-%d", f.refSeq), nil
}

func (f *fakeNotifier) PublishPoll(ctx context.Context, question string, options []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pollErr != nil {
		return f.pollErr
	}
	f.polls = append(f.polls, question)
	return nil
}

// fakeRenderer renders an event as a stable token.
type fakeRenderer struct{}

func (fakeRenderer) RenderEvent(e *entities.Event, locale string) string {
	return "rendered:" + e.Title
}

// fakeTexts echoes the message key so assertions can match on it.
type fakeTexts struct{}

func (fakeTexts) T(locale, key string, data map[string]any) string {
	if title, ok := data["Title"]; ok {
		return key + ":" + fmt.Sprint(title)
	}
	return key
}
