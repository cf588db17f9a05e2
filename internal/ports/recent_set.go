package ports

import (
	"context"

	"github.com/avasquez/ppmon/internal/domain"
)

// RecentSet accumulates clients whose disconnection was recorded, so a
// later active-session check can report who came back. It is an
// explicit store rather than ambient process state so hosts can choose
// between in-memory and persisted implementations.
type RecentSet interface {
	Add(ctx context.Context, names ...domain.ClientName) error
	// Intersect returns the stored names present in the active set,
	// sorted for stable output.
	Intersect(ctx context.Context, active domain.ActiveClientSet) ([]domain.ClientName, error)
	Clear(ctx context.Context) error
}
