package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/avasquez/ppmon/internal/domain"
	"github.com/avasquez/ppmon/internal/ports"
)

// Store is an in-process recently-disconnected set. State lives for the
// lifetime of the process only; hosts that need the set to survive
// between invocations use the toml store instead.
type Store struct {
	mu      sync.Mutex
	members map[domain.ClientName]struct{}
}

var _ ports.RecentSet = (*Store)(nil)

func NewStore() *Store {
	return &Store{members: make(map[domain.ClientName]struct{})}
}

func (s *Store) Add(ctx context.Context, names ...domain.ClientName) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range names {
		s.members[name] = struct{}{}
	}

	return nil
}

func (s *Store) Intersect(ctx context.Context, active domain.ActiveClientSet) ([]domain.ClientName, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var names []domain.ClientName
	for name := range s.members {
		if _, ok := active[name]; ok {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = make(map[domain.ClientName]struct{})

	return nil
}
