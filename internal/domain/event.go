package domain

type EventKind string

const (
	EventConnect        EventKind = "connect"
	EventDisconnect     EventKind = "disconnect"
	EventRapidReconnect EventKind = "rapid-reconnect"
)

// ConnectionEvent is one entry in the classified connection timeline.
// Events are ordered by position in the source stream, not by parsed
// time. RapidReconnect events are synthetic and always immediately
// follow the connect event that triggered them.
type ConnectionEvent struct {
	Time    string
	Client  ClientName
	Kind    EventKind
	Message string
}

// DisconnectionRecord is produced once per log line matching a legacy
// disconnect pattern. Records are append-only; the durable log is never
// rewritten or deduplicated.
type DisconnectionRecord struct {
	Client  ClientName
	IP      string
	Time    string
	Message string
	Topics  string
}
