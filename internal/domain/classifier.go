package domain

import (
	"regexp"
	"strings"
)

// The two extraction conventions the device emits. The legacy patterns
// are free-text disconnect templates seen across RouterOS releases; the
// tag convention is the structured <pppoe-NAME> marker that covers the
// full connect/disconnect lifecycle.
var legacyDisconnectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)pppoe (.*) disconnected`),
	regexp.MustCompile(`(?i)PPPoE connection closed for user (.*)`),
	regexp.MustCompile(`(?i)user (.*) disconnected`),
	regexp.MustCompile(`(?i)removed pppoe client (.*)`),
	regexp.MustCompile(`(?i)PPP user (.*) closed`),
}

var ipv4Pattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

var relevanceTerms = []string{"pppoe", "ppp", "disconnected", "closed", "terminating..."}

const (
	sessionTagPrefix = "<pppoe-"
	// NotAvailable is the placeholder for fields the device did not
	// report, including record IPs when no IPv4-looking substring is
	// present in the message.
	NotAvailable = "N/A"
)

// SessionEvent is a raw tag-path match, before session tracking.
type SessionEvent struct {
	Time    string
	Client  ClientName
	Kind    EventKind
	Message string
}

// Extraction is the tagged result of classifying one log entry. A
// single entry can contribute at most one disconnection record and,
// independently, at most one session event; either or both may be nil.
type Extraction struct {
	Disconnection *DisconnectionRecord
	Session       *SessionEvent
}

// Extract runs both classification conventions over one entry.
// Malformed entries yield an empty Extraction.
func Extract(entry LogEntry) Extraction {
	if entry.Malformed() {
		return Extraction{}
	}

	var out Extraction
	if record, ok := MatchDisconnection(entry); ok {
		out.Disconnection = &record
	}
	if event, ok := MatchSessionEvent(entry); ok {
		out.Session = &event
	}

	return out
}

// MatchDisconnection tests an entry against the legacy disconnect
// patterns. Patterns are tried in fixed priority order; the first match
// wins and the captured client name is trimmed of surrounding space.
func MatchDisconnection(entry LogEntry) (DisconnectionRecord, bool) {
	if !relevantToPPPoE(entry) {
		return DisconnectionRecord{}, false
	}

	for _, pattern := range legacyDisconnectPatterns {
		match := pattern.FindStringSubmatch(entry.Message)
		if match == nil {
			continue
		}

		return DisconnectionRecord{
			Client:  ClientName(strings.TrimSpace(match[1])),
			IP:      extractIP(entry.Message),
			Time:    entry.Time,
			Message: entry.Message,
			Topics:  entry.Topics,
		}, true
	}

	return DisconnectionRecord{}, false
}

// MatchSessionEvent tests an entry against the <pppoe-NAME> tag
// convention. Disconnect keywords take priority over "connected" on
// ambiguous text; entries matching neither keyword produce nothing.
func MatchSessionEvent(entry LogEntry) (SessionEvent, bool) {
	start := strings.Index(entry.Message, sessionTagPrefix)
	if start < 0 {
		return SessionEvent{}, false
	}

	rest := entry.Message[start+len(sessionTagPrefix):]
	end := strings.Index(rest, ">")
	if end < 0 {
		return SessionEvent{}, false
	}
	client := ClientName(rest[:end])

	lower := strings.ToLower(entry.Message)
	var kind EventKind
	switch {
	case strings.Contains(lower, "terminating") || strings.Contains(lower, "disconnected"):
		kind = EventDisconnect
	case strings.Contains(lower, "connected"):
		kind = EventConnect
	default:
		return SessionEvent{}, false
	}

	return SessionEvent{
		Time:    entry.Time,
		Client:  client,
		Kind:    kind,
		Message: entry.Message,
	}, true
}

func relevantToPPPoE(entry LogEntry) bool {
	if strings.Contains(entry.Topics, "pppoe") || strings.Contains(entry.Topics, "ppp") {
		return true
	}

	lower := strings.ToLower(entry.Message)
	for _, term := range relevanceTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	return false
}

// extractIP pulls the first IPv4-looking substring out of a message.
// Octet ranges are deliberately not validated; the value is display
// data, not an address to route.
func extractIP(message string) string {
	if ip := ipv4Pattern.FindString(message); ip != "" {
		return ip
	}
	return NotAvailable
}
