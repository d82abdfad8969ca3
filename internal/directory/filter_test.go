package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundermap/internal/domain"
	"foundermap/internal/roster"
)

func loadRoster(t *testing.T) []domain.DirectoryEntry {
	t.Helper()
	s, err := roster.Load(roster.DefaultFixture())
	require.NoError(t, err)
	return s.All()
}

func ids(entries []domain.DirectoryEntry) []string {
	out := make([]string, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].ID)
	}
	return out
}

func TestFilter_Text(t *testing.T) {
	entries := loadRoster(t)

	t.Run("empty_query_returns_all_in_order", func(t *testing.T) {
		got := Filter(entries, Query{})
		assert.Equal(t, ids(entries), ids(got))
	})

	t.Run("name_substring_case_insensitive", func(t *testing.T) {
		got := Filter(entries, Query{Text: "cHeN"})
		require.Len(t, got, 1)
		assert.Equal(t, "Sarah Chen", got[0].Name)
	})

	t.Run("startup_name", func(t *testing.T) {
		got := Filter(entries, Query{Text: "equibank"})
		require.Len(t, got, 1)
		assert.Equal(t, "Michael Rodriguez", got[0].Name)
	})

	t.Run("city", func(t *testing.T) {
		got := Filter(entries, Query{Text: "london"})
		require.Len(t, got, 1)
		assert.Equal(t, "Aisha Patel", got[0].Name)
	})

	t.Run("country", func(t *testing.T) {
		got := Filter(entries, Query{Text: "usa"})
		assert.Equal(t, []string{"1", "2", "4"}, ids(got))
	})

	t.Run("bio_is_not_searched", func(t *testing.T) {
		// "blockchain" appears only in Ahmed Hassan's bio.
		got := Filter(entries, Query{Text: "blockchain"})
		assert.Empty(t, got)
	})

	t.Run("no_match", func(t *testing.T) {
		got := Filter(entries, Query{Text: "zzz-nobody"})
		assert.Empty(t, got)
	})
}

func TestFilter_Facets(t *testing.T) {
	entries := loadRoster(t)

	t.Run("role_or_within_facet", func(t *testing.T) {
		got := Filter(entries, Query{Facets: Facets{
			Roles: []domain.Role{domain.RoleAdvisor, domain.RoleInvestor},
		}})
		assert.Equal(t, []string{"4", "5"}, ids(got))
	})

	t.Run("role_and_industry_across_facets", func(t *testing.T) {
		got := Filter(entries, Query{Facets: Facets{
			Roles:      []domain.Role{domain.RoleFounder, domain.RoleInvestor},
			Industries: []domain.Industry{"fintech"},
		}})
		// Founders/investors in fintech: Michael Rodriguez, Ahmed Hassan.
		assert.Equal(t, []string{"2", "8"}, ids(got))
	})

	t.Run("skill", func(t *testing.T) {
		got := Filter(entries, Query{Facets: Facets{
			Skills: []domain.Skill{"design"},
		}})
		assert.Equal(t, []string{"3", "7"}, ids(got))
	})

	t.Run("stage_requires_startup", func(t *testing.T) {
		got := Filter(entries, Query{Facets: Facets{
			Stages: []domain.Stage{domain.StageSeed},
		}})
		// Investors and advisors have no startup, so they never match a
		// stage facet.
		assert.Equal(t, []string{"2", "8"}, ids(got))
	})

	t.Run("text_and_facets_combine", func(t *testing.T) {
		got := Filter(entries, Query{
			Text: "usa",
			Facets: Facets{
				Roles: []domain.Role{domain.RoleFounder},
			},
		})
		assert.Equal(t, []string{"1", "2"}, ids(got))
	})
}

func TestFilter_Distance(t *testing.T) {
	entries := loadRoster(t)
	sf := &domain.Location{Latitude: 37.7749, Longitude: -122.4194}

	t.Run("within_radius", func(t *testing.T) {
		// 1000 km around San Francisco reaches Los Angeles but not New York.
		got := Filter(entries, Query{Facets: Facets{
			DistanceKm: 1000,
			Origin:     sf,
		}})
		assert.Equal(t, []string{"1", "4"}, ids(got))
	})

	t.Run("zero_radius_disables_facet", func(t *testing.T) {
		got := Filter(entries, Query{Facets: Facets{DistanceKm: 0, Origin: sf}})
		assert.Len(t, got, len(entries))
	})

	t.Run("nil_origin_disables_facet", func(t *testing.T) {
		got := Filter(entries, Query{Facets: Facets{DistanceKm: 100}})
		assert.Len(t, got, len(entries))
	})

	t.Run("entry_without_location_excluded", func(t *testing.T) {
		withNoLoc := append([]domain.DirectoryEntry{}, entries...)
		withNoLoc = append(withNoLoc, domain.DirectoryEntry{
			ID: "x", Name: "Nowhere", Role: domain.RoleFounder,
		})
		got := Filter(withNoLoc, Query{Facets: Facets{DistanceKm: 50000, Origin: sf}})
		assert.NotContains(t, ids(got), "x")
	})
}
