// Package routeros adapts the MikroTik RouterOS binary API to the
// monitor's log-source and active-session ports.
package routeros

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	api "github.com/go-routeros/routeros/v3"

	"github.com/avasquez/ppmon/internal/domain"
	"github.com/avasquez/ppmon/internal/ports"
)

// entriesPerMinute sizes the log request for a window: the device API
// has no server-side time filter, so the window is converted to an
// entry budget and the newest entries are kept.
const entriesPerMinute = 5

const defaultDialTimeout = 10 * time.Second

type Client struct {
	address     string
	username    string
	password    string
	dialTimeout time.Duration
}

var (
	_ ports.LogSource           = (*Client)(nil)
	_ ports.ActiveSessionSource = (*Client)(nil)
)

func NewClient(address, username, password string, dialTimeout time.Duration) *Client {
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	return &Client{
		address:     address,
		username:    username,
		password:    password,
		dialTimeout: dialTimeout,
	}
}

// FetchLogs returns the newest window of system log entries, truncated
// to the window's entry budget.
func (c *Client) FetchLogs(ctx context.Context, window time.Duration) ([]domain.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conn, err := c.dial()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	reply, err := conn.Run("/log/print")
	if err != nil {
		return nil, fmt.Errorf("%w: query device log: %v", domain.ErrTransportUnavailable, err)
	}

	entries := make([]domain.LogEntry, 0, len(reply.Re))
	for _, sentence := range reply.Re {
		entries = append(entries, logEntryFromAttrs(sentence.Map))
	}

	budget := entryBudget(window)
	if len(entries) > budget {
		slog.Debug("truncating device log window",
			"fetched", len(entries), "budget", budget)
		entries = entries[len(entries)-budget:]
	}

	return entries, nil
}

// FetchActiveClients returns the current /ppp/active table keyed by
// client name. Rows without a name or address are skipped.
func (c *Client) FetchActiveClients(ctx context.Context) (domain.ActiveClientSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conn, err := c.dial()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	reply, err := conn.Run("/ppp/active/print")
	if err != nil {
		return nil, fmt.Errorf("%w: query active sessions: %v", domain.ErrTransportUnavailable, err)
	}

	active := make(domain.ActiveClientSet, len(reply.Re))
	for _, sentence := range reply.Re {
		name, client, ok := activeClientFromAttrs(sentence.Map)
		if !ok {
			continue
		}
		active[name] = client
	}

	return active, nil
}

func (c *Client) dial() (*api.Client, error) {
	conn, err := api.DialTimeout(c.address, c.username, c.password, c.dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", domain.ErrTransportUnavailable, c.address, err)
	}

	return conn, nil
}

func entryBudget(window time.Duration) int {
	minutes := int(window.Minutes())
	if minutes < 1 {
		minutes = 1
	}

	return minutes * entriesPerMinute
}

func logEntryFromAttrs(attrs map[string]string) domain.LogEntry {
	return domain.LogEntry{
		Time:    attrs["time"],
		Message: attrs["message"],
		Topics:  attrs["topics"],
	}
}

func activeClientFromAttrs(attrs map[string]string) (domain.ClientName, domain.ActiveClient, bool) {
	name, hasName := attrs["name"]
	address, hasAddress := attrs["address"]
	if !hasName || !hasAddress {
		return "", domain.ActiveClient{}, false
	}

	return domain.ClientName(name), domain.ActiveClient{
		IP:       address,
		Uptime:   attrOrNA(attrs, "uptime"),
		CallerID: attrOrNA(attrs, "caller-id"),
		Service:  attrOrNA(attrs, "service"),
	}, true
}

func attrOrNA(attrs map[string]string, key string) string {
	if value, ok := attrs[key]; ok && value != "" {
		return value
	}
	return domain.NotAvailable
}
