package ports

import (
	"context"

	"github.com/avasquez/ppmon/internal/domain"
)

// DisconnectionLog is the durable, append-only record of classified
// disconnections. Appending the same records twice duplicates rows;
// deduplication is deliberately not performed.
type DisconnectionLog interface {
	Append(ctx context.Context, records []domain.DisconnectionRecord) error
	Read(ctx context.Context) ([]domain.DisconnectionRecord, error)
	Clear(ctx context.Context) error
}
