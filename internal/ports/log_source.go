package ports

import (
	"context"
	"time"

	"github.com/avasquez/ppmon/internal/domain"
)

// LogSource yields a best-effort window of recent device log entries.
// The window only bounds how many entries are requested; the device's
// log buffer may retain less.
type LogSource interface {
	FetchLogs(ctx context.Context, window time.Duration) ([]domain.LogEntry, error)
}

// ActiveSessionSource yields a point-in-time snapshot of the device's
// active PPP sessions.
type ActiveSessionSource interface {
	FetchActiveClients(ctx context.Context) (domain.ActiveClientSet, error)
}
