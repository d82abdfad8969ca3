// Package roster holds the canonical in-memory member list.
//
// The roster is loaded once from a fixture and is immutable for the life of
// the process; every view (map, directory list, messaging sidebar) derives
// from it.
package roster

import (
	"foundermap/internal/domain"
)

// Store is the read-only roster. Safe for concurrent use: the entry slice
// is never mutated after construction.
type Store struct {
	entries []domain.DirectoryEntry
	byID    map[string]int
}

// New builds a Store from pre-validated entries. Use Load for fixture bytes.
func New(entries []domain.DirectoryEntry) (*Store, error) {
	byID := make(map[string]int, len(entries))
	for i := range entries {
		id := entries[i].ID
		if _, dup := byID[id]; dup {
			return nil, domain.ErrLoad("roster: duplicate entry id %q", id)
		}
		byID[id] = i
	}
	return &Store{entries: entries, byID: byID}, nil
}

// Load parses fixture bytes and builds the store.
func Load(data []byte) (*Store, error) {
	entries, err := ParseFixture(data)
	if err != nil {
		return nil, err
	}
	return New(entries)
}

// All returns every entry in fixture order. Callers must not mutate the
// returned slice.
func (s *Store) All() []domain.DirectoryEntry {
	return s.entries
}

// Len returns the roster size.
func (s *Store) Len() int {
	return len(s.entries)
}

// ByID looks up one entry. Returns a NotFoundError for unknown ids (e.g., a
// stale deep link).
func (s *Store) ByID(id string) (domain.DirectoryEntry, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.DirectoryEntry{}, domain.ErrNotFound("no directory entry with id %q", id)
	}
	return s.entries[i], nil
}

// Others returns the roster minus the given viewer, order-preserving.
func (s *Store) Others(viewerID string) []domain.DirectoryEntry {
	out := make([]domain.DirectoryEntry, 0, len(s.entries))
	for i := range s.entries {
		if s.entries[i].ID == viewerID {
			continue
		}
		out = append(out, s.entries[i])
	}
	return out
}
