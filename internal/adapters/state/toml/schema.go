package toml

import (
	"fmt"
	"sort"

	"github.com/avasquez/ppmon/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int      `toml:"version"`
	Clients []string `toml:"clients"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s fileSchema) memberSet() map[domain.ClientName]struct{} {
	members := make(map[domain.ClientName]struct{}, len(s.Clients))
	for _, client := range s.Clients {
		members[domain.ClientName(client)] = struct{}{}
	}

	return members
}

func (s *fileSchema) setMembers(members map[domain.ClientName]struct{}) {
	clients := make([]string, 0, len(members))
	for name := range members {
		clients = append(clients, string(name))
	}
	sort.Strings(clients)
	s.Clients = clients
}
