package roster

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"foundermap/internal/domain"
)

//go:embed fixture.yaml
var fixtureYAML []byte

type fixtureFile struct {
	Entries []domain.DirectoryEntry `yaml:"entries"`
}

// ParseFixture decodes and validates a roster fixture. Any structural
// problem (unparseable YAML, an invalid entry, a duplicate id) is a
// domain.LoadError: the roster loads completely or not at all.
func ParseFixture(data []byte) ([]domain.DirectoryEntry, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, domain.ErrLoad("parse roster fixture: %v", err)
	}
	if len(f.Entries) == 0 {
		return nil, domain.ErrLoad("roster fixture contains no entries")
	}

	seen := make(map[string]struct{}, len(f.Entries))
	for i := range f.Entries {
		e := &f.Entries[i]
		if err := e.Validate(); err != nil {
			return nil, domain.ErrLoad("roster fixture entry %d: %v", i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, domain.ErrLoad("roster fixture: duplicate entry id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return f.Entries, nil
}

// DefaultFixture returns the embedded demo roster.
func DefaultFixture() []byte {
	return fixtureYAML
}
