package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avasquez/ppmon/internal/application"
	"github.com/avasquez/ppmon/internal/domain"
)

func TestRenderDisconnections(t *testing.T) {
	output := RenderDisconnections([]domain.DisconnectionRecord{
		{Time: "aug/30 09:00:00", Client: "bob", IP: domain.NotAvailable, Message: "pppoe bob disconnected"},
		{Time: "aug/30 10:15:00", Client: "alice", IP: "10.0.0.5", Message: "user alice disconnected from 10.0.0.5"},
	})

	assert.Contains(t, output, "records: 2")
	assert.Contains(t, output, "bob")
	assert.Contains(t, output, "10.0.0.5")
	// Newest first.
	assert.Less(t, strings.Index(output, "alice"), strings.Index(output, "bob"))
}

func TestRenderDisconnectionsEmpty(t *testing.T) {
	output := RenderDisconnections(nil)

	assert.Contains(t, output, "records: 0")
	assert.Contains(t, output, "No disconnections detected.")
}

func TestRenderEvents(t *testing.T) {
	output := RenderEvents([]domain.ConnectionEvent{
		{Time: "t1", Client: "carol", Kind: domain.EventDisconnect, Message: "<pppoe-carol>: terminating..."},
		{Time: "t2", Client: "carol", Kind: domain.EventConnect, Message: "<pppoe-carol>: connected"},
		{Time: "t2", Client: "carol", Kind: domain.EventRapidReconnect, Message: domain.RapidReconnectMessage},
	})

	assert.Contains(t, output, "events: 3")
	assert.Contains(t, output, "DISCONNECT")
	assert.Contains(t, output, "CONNECT")
	assert.Contains(t, output, "RAPID RECONNECT")
}

func TestRenderActiveWithReconnections(t *testing.T) {
	output := RenderActive(application.ActiveReport{
		Clients: domain.ActiveClientSet{
			"casa-42": {IP: "10.20.0.7", Uptime: "1d2h", CallerID: "aa:bb", Service: "pppoe"},
			"casa-7":  {IP: "10.20.0.9", Uptime: "5m", CallerID: "cc:dd", Service: "pppoe"},
		},
		Reconnected: []domain.ClientName{"casa-7"},
	})

	assert.Contains(t, output, "clients: 2")
	assert.Contains(t, output, "casa-42")
	assert.Contains(t, output, "10.20.0.9")
	assert.Contains(t, output, "Reconnected since last check: casa-7")
}

func TestRenderActiveEmpty(t *testing.T) {
	output := RenderActive(application.ActiveReport{})

	assert.Contains(t, output, "clients: 0")
	assert.Contains(t, output, "No active clients.")
	assert.NotContains(t, output, "Reconnected since last check")
}
