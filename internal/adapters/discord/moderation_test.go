package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbot/internal/domain/entities"
)

func TestDecisionCustomIDRoundTrip(t *testing.T) {
	id := decisionCustomID(entities.DecisionApprove, "01HZXW5T9G")
	assert.Equal(t, "mod:approve:01HZXW5T9G", id)

	action, ok := ParseDecision(id)
	require.True(t, ok)
	assert.Equal(t, "01HZXW5T9G", action.EventID)
	assert.Equal(t, entities.DecisionApprove, action.Decision)

	action, ok = ParseDecision(decisionCustomID(entities.DecisionDecline, "ev-7"))
	require.True(t, ok)
	assert.Equal(t, entities.DecisionDecline, action.Decision)
}

func TestParseDecisionRejectsMalformedIDs(t *testing.T) {
	for _, id := range []string{
		"",
		"mod:",
		"mod:approve",
		"mod:approve:",
		"mod:nuke:ev-1",
		"wizard:confirm",
		"btn_join",
	} {
		_, ok := ParseDecision(id)
		assert.False(t, ok, "customID %q should not parse", id)
	}
}
