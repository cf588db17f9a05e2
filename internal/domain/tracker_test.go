package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackSessionsRapidReconnect(t *testing.T) {
	events := TrackSessions([]SessionEvent{
		{Time: "t1", Client: "carol", Kind: EventDisconnect, Message: "<pppoe-carol>: terminating..."},
		{Time: "t2", Client: "carol", Kind: EventConnect, Message: "<pppoe-carol>: connected"},
	})

	require.Len(t, events, 3)
	assert.Equal(t, EventDisconnect, events[0].Kind)
	assert.Equal(t, EventConnect, events[1].Kind)
	assert.Equal(t, EventRapidReconnect, events[2].Kind)
	assert.Equal(t, ClientName("carol"), events[2].Client)
	assert.Equal(t, "t2", events[2].Time)
	assert.Equal(t, RapidReconnectMessage, events[2].Message)
}

func TestTrackSessionsFirstSeenConnect(t *testing.T) {
	events := TrackSessions([]SessionEvent{
		{Time: "t1", Client: "dan", Kind: EventConnect, Message: "<pppoe-dan>: connected"},
	})

	require.Len(t, events, 1)
	assert.Equal(t, EventConnect, events[0].Kind)
	assert.Equal(t, ClientName("dan"), events[0].Client)
}

func TestTrackSessionsNoReconnectAfterConnect(t *testing.T) {
	// A second connect with no disconnect in between is not a rapid
	// reconnection.
	events := TrackSessions([]SessionEvent{
		{Time: "t1", Client: "dan", Kind: EventConnect},
		{Time: "t2", Client: "dan", Kind: EventConnect},
	})

	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, EventConnect, event.Kind)
	}
}

func TestTrackSessionsPerClientState(t *testing.T) {
	// carol's disconnect must not trigger a reconnect marker for dan.
	events := TrackSessions([]SessionEvent{
		{Time: "t1", Client: "carol", Kind: EventDisconnect},
		{Time: "t2", Client: "dan", Kind: EventConnect},
		{Time: "t3", Client: "carol", Kind: EventConnect},
	})

	require.Len(t, events, 4)
	assert.Equal(t, EventRapidReconnect, events[3].Kind)
	assert.Equal(t, ClientName("carol"), events[3].Client)
}

func TestTrackSessionsInterleavedLifecycles(t *testing.T) {
	events := TrackSessions([]SessionEvent{
		{Time: "t1", Client: "a", Kind: EventConnect},
		{Time: "t2", Client: "a", Kind: EventDisconnect},
		{Time: "t3", Client: "b", Kind: EventDisconnect},
		{Time: "t4", Client: "a", Kind: EventConnect},
		{Time: "t5", Client: "b", Kind: EventConnect},
	})

	require.Len(t, events, 7)
	assert.Equal(t, EventRapidReconnect, events[4].Kind)
	assert.Equal(t, ClientName("a"), events[4].Client)
	assert.Equal(t, EventRapidReconnect, events[6].Kind)
	assert.Equal(t, ClientName("b"), events[6].Client)
}

func TestTrackSessionsEmptyInput(t *testing.T) {
	assert.Empty(t, TrackSessions(nil))
}
