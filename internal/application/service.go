package application

import (
	"context"
	"fmt"
	"time"

	"github.com/avasquez/ppmon/internal/domain"
	"github.com/avasquez/ppmon/internal/ports"
)

// MonitorService orchestrates one classification pass over a batch of
// device log entries and the lower-frequency active-session
// reconciliation. One pass runs to completion before the next is
// triggered; the classifier and tracker keep no state across passes.
type MonitorService struct {
	logs   ports.LogSource
	active ports.ActiveSessionSource
	sink   ports.DisconnectionLog
	recent ports.RecentSet
	clock  ports.Clock
}

func NewMonitorService(logs ports.LogSource, active ports.ActiveSessionSource, sink ports.DisconnectionLog, recent ports.RecentSet, clock ports.Clock) *MonitorService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &MonitorService{
		logs:   logs,
		active: active,
		sink:   sink,
		recent: recent,
		clock:  clock,
	}
}

// MonitorReport is the result of one classification pass: the legacy
// disconnection records and the tag-path connection timeline, both
// independent projections of the same raw input.
type MonitorReport struct {
	Records   []domain.DisconnectionRecord
	Events    []domain.ConnectionEvent
	FetchedAt time.Time
}

// ActiveReport is the result of one active-session reconciliation.
type ActiveReport struct {
	Clients     domain.ActiveClientSet
	Reconnected []domain.ClientName
	FetchedAt   time.Time
}

// Classify runs both extraction conventions over the entries and
// tracks per-client session state. Pure: no side effects, identical
// input yields identical output.
func (s *MonitorService) Classify(entries []domain.LogEntry) ([]domain.DisconnectionRecord, []domain.ConnectionEvent) {
	var records []domain.DisconnectionRecord
	var matches []domain.SessionEvent

	for _, entry := range entries {
		extraction := domain.Extract(entry)
		if extraction.Disconnection != nil {
			records = append(records, *extraction.Disconnection)
		}
		if extraction.Session != nil {
			matches = append(matches, *extraction.Session)
		}
	}

	return records, domain.TrackSessions(matches)
}

// FindRecentDisconnections fetches the recent log window, classifies
// it, appends matching records to the durable log and remembers the
// disconnected clients for later reconciliation. On transport failure
// both result lists are empty, nothing is appended and the error is
// surfaced to the caller; no retry is attempted here.
func (s *MonitorService) FindRecentDisconnections(ctx context.Context, window time.Duration) (MonitorReport, error) {
	entries, err := s.logs.FetchLogs(ctx, window)
	if err != nil {
		return MonitorReport{}, fmt.Errorf("fetch device logs: %w", err)
	}

	fetchedAt := s.clock.Now()
	records, events := s.Classify(entries)
	report := MonitorReport{Records: records, Events: events, FetchedAt: fetchedAt}
	if len(records) == 0 {
		return report, nil
	}

	if err := s.sink.Append(ctx, records); err != nil {
		return MonitorReport{}, fmt.Errorf("append disconnection log: %w", err)
	}

	if err := s.recent.Add(ctx, disconnectedNames(records)...); err != nil {
		return MonitorReport{}, fmt.Errorf("record recent disconnections: %w", err)
	}

	return report, nil
}

// ReconcileActive fetches the active-session snapshot, reports which
// recently-disconnected clients are active again and clears the recent
// set. The clear is unconditional: a reconnection is only ever reported
// once, on the first check after its disconnection was recorded.
func (s *MonitorService) ReconcileActive(ctx context.Context) (ActiveReport, error) {
	clients, err := s.active.FetchActiveClients(ctx)
	if err != nil {
		return ActiveReport{}, fmt.Errorf("fetch active clients: %w", err)
	}

	reconnected, err := s.recent.Intersect(ctx, clients)
	if err != nil {
		return ActiveReport{}, fmt.Errorf("intersect recent disconnections: %w", err)
	}

	if err := s.recent.Clear(ctx); err != nil {
		return ActiveReport{}, fmt.Errorf("clear recent disconnections: %w", err)
	}

	return ActiveReport{Clients: clients, Reconnected: reconnected, FetchedAt: s.clock.Now()}, nil
}

// History returns the durable disconnection log as recorded.
func (s *MonitorService) History(ctx context.Context) ([]domain.DisconnectionRecord, error) {
	records, err := s.sink.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read disconnection log: %w", err)
	}

	return records, nil
}

// ClearHistory deletes the durable disconnection log.
func (s *MonitorService) ClearHistory(ctx context.Context) error {
	if err := s.sink.Clear(ctx); err != nil {
		return fmt.Errorf("clear disconnection log: %w", err)
	}

	return nil
}

func disconnectedNames(records []domain.DisconnectionRecord) []domain.ClientName {
	names := make([]domain.ClientName, 0, len(records))
	seen := make(map[domain.ClientName]struct{}, len(records))

	for _, record := range records {
		if _, ok := seen[record.Client]; ok {
			continue
		}
		seen[record.Client] = struct{}{}
		names = append(names, record.Client)
	}

	return names
}
