package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
)

func newDispatcherFixture(t *testing.T, pollOnApprove bool) (*ModerationDispatcher, *fakeEventRepo, *fakeNotifier) {
	t.Helper()
	events := newFakeEventRepo()
	stats := newFakeStatsRepo()
	notifier := &fakeNotifier{}
	lifecycle := NewEventLifecycle(events, stats)
	d := NewModerationDispatcher(lifecycle, notifier, fakeRenderer{}, fakeTexts{}, "en", pollOnApprove)
	return d, events, notifier
}

func submitPending(t *testing.T, d *ModerationDispatcher) *entities.Event {
	t.Helper()
	event, err := d.lifecycle.Create(context.Background(), testDraft(alice, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	return event
}

func TestDispatchApproveFanOut(t *testing.T) {
	d, events, notifier := newDispatcherFixture(t, true)
	event := submitPending(t, d)

	outcome, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  event.ID,
		Decision: entities.DecisionApprove,
	})
	require.NoError(t, err)
	require.NotNil(t, outcome.Event)
	assert.False(t, outcome.AlreadyProcessed)
	assert.Equal(t, entities.StatusApproved, outcome.Event.Status)

	// Creator notified once, event published once, poll posted once.
	require.Len(t, notifier.directs, 1)
	assert.True(t, strings.HasPrefix(notifier.directs[0], alice.ID+"|"))
	assert.Contains(t, notifier.directs[0], "moderation.approved")
	require.Len(t, notifier.published, 1)
	assert.Equal(t, "rendered:Picnic", notifier.published[0])
	require.Len(t, notifier.polls, 1)
	assert.Equal(t, "poll.question:Picnic", notifier.polls[0])

	// Publication reference is recorded back onto the event.
	stored, err := events.FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "msg-1", stored.PublicationRef)
	assert.Equal(t, "msg-1", outcome.Event.PublicationRef)
}

func TestDispatchApproveWithoutPoll(t *testing.T) {
	d, _, notifier := newDispatcherFixture(t, false)
	event := submitPending(t, d)

	_, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  event.ID,
		Decision: entities.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Len(t, notifier.published, 1)
	assert.Empty(t, notifier.polls)
}

func TestDispatchDecline(t *testing.T) {
	d, events, notifier := newDispatcherFixture(t, true)
	event := submitPending(t, d)

	outcome, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  event.ID,
		Decision: entities.DecisionDecline,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDeclined, outcome.Event.Status)

	// Only the creator hears about a decline.
	require.Len(t, notifier.directs, 1)
	assert.Contains(t, notifier.directs[0], "moderation.declined")
	assert.Empty(t, notifier.published)
	assert.Empty(t, notifier.polls)

	stored, err := events.FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.PublicationRef)
}

func TestDispatchSecondDecisionIsNoOp(t *testing.T) {
	d, _, notifier := newDispatcherFixture(t, true)
	event := submitPending(t, d)

	_, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  event.ID,
		Decision: entities.DecisionApprove,
	})
	require.NoError(t, err)

	outcome, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  event.ID,
		Decision: entities.DecisionDecline,
	})
	require.NoError(t, err)
	assert.True(t, outcome.AlreadyProcessed)
	assert.Nil(t, outcome.Event)

	// The side-effect sequence ran exactly once.
	assert.Len(t, notifier.directs, 1)
	assert.Len(t, notifier.published, 1)
	assert.Len(t, notifier.polls, 1)
}

func TestDispatchUnknownEvent(t *testing.T) {
	d, _, notifier := newDispatcherFixture(t, true)

	outcome, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  "missing",
		Decision: entities.DecisionApprove,
	})
	require.NoError(t, err)
	assert.True(t, outcome.AlreadyProcessed)
	assert.Empty(t, notifier.directs)
}

func TestDispatchPublishFailureDoesNotRollBack(t *testing.T) {
	d, events, notifier := newDispatcherFixture(t, true)
	notifier.publishErr = errors.New("channel unreachable")
	event := submitPending(t, d)

	outcome, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  event.ID,
		Decision: entities.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusApproved, outcome.Event.Status)

	// The committed status stays; publication is simply skipped.
	stored, err := events.FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusApproved, stored.Status)
	assert.Empty(t, stored.PublicationRef)
	assert.Empty(t, notifier.polls)
}

func TestDispatchCreatorNotificationFailureStillPublishes(t *testing.T) {
	d, _, notifier := newDispatcherFixture(t, true)
	notifier.directErr = errors.New("user blocked the bot")
	event := submitPending(t, d)

	outcome, err := d.Dispatch(context.Background(), input.DecisionAction{
		EventID:  event.ID,
		Decision: entities.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusApproved, outcome.Event.Status)
	assert.Len(t, notifier.published, 1)
}
