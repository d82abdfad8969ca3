// Package directory filters and searches the roster for the list view.
package directory

import (
	"strings"

	"foundermap/internal/domain"
	"foundermap/internal/geo"
)

// Facets narrows the roster by categorical and numeric dimensions. Values
// within one facet combine with OR; facets combine with AND. Zero values
// disable a facet.
type Facets struct {
	Roles      []domain.Role
	Industries []domain.Industry
	Skills     []domain.Skill
	Stages     []domain.Stage

	// DistanceKm includes only entries within this many kilometres of
	// Origin. Disabled when <= 0 or Origin is nil. Entries without a
	// location never match an active distance facet.
	DistanceKm float64
	Origin     *domain.Location
}

// Query is one filter/search request.
type Query struct {
	Text   string
	Facets Facets
}

// Filter returns the entries matching the query, preserving input order.
// The result is a stable filter, not a relevance ranking. An empty query
// matches everything.
func Filter(entries []domain.DirectoryEntry, q Query) []domain.DirectoryEntry {
	out := make([]domain.DirectoryEntry, 0, len(entries))
	for i := range entries {
		if Matches(&entries[i], q) {
			out = append(out, entries[i])
		}
	}
	return out
}

// Matches reports whether a single entry satisfies the query.
func Matches(e *domain.DirectoryEntry, q Query) bool {
	return matchesText(e, q.Text) && matchesFacets(e, q.Facets)
}

// matchesText is a case-insensitive substring match against name, startup
// name, city, and country; the entry matches if ANY field contains the
// query.
func matchesText(e *domain.DirectoryEntry, text string) bool {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return true
	}
	fields := []string{e.Name, e.StartupName()}
	if e.Location != nil {
		fields = append(fields, e.Location.City, e.Location.Country)
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchesFacets(e *domain.DirectoryEntry, f Facets) bool {
	if len(f.Roles) > 0 && !containsRole(f.Roles, e.Role) {
		return false
	}
	if len(f.Industries) > 0 && !anyIndustry(e.Industries, f.Industries) {
		return false
	}
	if len(f.Skills) > 0 && !anySkill(e.Skills, f.Skills) {
		return false
	}
	if len(f.Stages) > 0 {
		if e.Startup == nil || !containsStage(f.Stages, e.Startup.Stage) {
			return false
		}
	}
	if f.DistanceKm > 0 && f.Origin != nil {
		if e.Location == nil {
			return false
		}
		d := geo.DistanceKm(
			f.Origin.Latitude, f.Origin.Longitude,
			e.Location.Latitude, e.Location.Longitude,
		)
		if d > f.DistanceKm {
			return false
		}
	}
	return true
}

func containsRole(roles []domain.Role, r domain.Role) bool {
	for _, v := range roles {
		if v == r {
			return true
		}
	}
	return false
}

func containsStage(stages []domain.Stage, s domain.Stage) bool {
	for _, v := range stages {
		if v == s {
			return true
		}
	}
	return false
}

func anyIndustry(have, want []domain.Industry) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func anySkill(have, want []domain.Skill) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
