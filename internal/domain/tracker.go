package domain

// RapidReconnectMessage is the fixed descriptive text carried by
// synthetic rapid-reconnect events instead of the original log text.
const RapidReconnectMessage = "client reconnected immediately after disconnecting"

type clientState struct {
	lastKind EventKind
	lastTime string
}

// TrackSessions replays tag-path matches in stream order and produces
// the connection timeline. Every observed event is emitted as-is; when
// a connect lands on a client whose most recent recorded state is a
// disconnect, a synthetic rapid-reconnect event is emitted immediately
// after it. "Rapid" is defined purely by adjacency in the classified
// sequence for that client, not by elapsed wall-clock time.
func TrackSessions(matches []SessionEvent) []ConnectionEvent {
	events := make([]ConnectionEvent, 0, len(matches))
	state := make(map[ClientName]clientState, len(matches))

	for _, match := range matches {
		events = append(events, ConnectionEvent{
			Time:    match.Time,
			Client:  match.Client,
			Kind:    match.Kind,
			Message: match.Message,
		})

		if match.Kind == EventConnect {
			// First-seen clients have no prior state to compare.
			if prev, seen := state[match.Client]; seen && prev.lastKind == EventDisconnect {
				events = append(events, ConnectionEvent{
					Time:    match.Time,
					Client:  match.Client,
					Kind:    EventRapidReconnect,
					Message: RapidReconnectMessage,
				})
			}
		}

		state[match.Client] = clientState{lastKind: match.Kind, lastTime: match.Time}
	}

	return events
}
