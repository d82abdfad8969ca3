// Package domain defines core types, interfaces, and errors for the founder map.
package domain

import (
	"strings"
)

// Role classifies a directory member.
type Role string

// Core roles. Views may carry extra styling-only roles (developer, designer,
// business, marketing); those are accepted anywhere a Role is rendered but
// are not part of the canonical fixture.
const (
	RoleFounder  Role = "founder"
	RoleAdvisor  Role = "advisor"
	RoleInvestor Role = "investor"
)

// Skill is a member capability tag.
type Skill string

// Industry is a sector tag.
type Industry string

// Stage is a startup funding stage.
type Stage string

// Stage values, ordered roughly by maturity.
const (
	StageIdea    Stage = "idea"
	StageMVP     Stage = "mvp"
	StagePreSeed Stage = "pre-seed"
	StageSeed    Stage = "seed"
	StageSeriesA Stage = "series-a"
	StageSeriesB Stage = "series-b"
	StageGrowth  Stage = "growth"
)

// Option pairs a facet value with its display label for filter panels.
type Option struct {
	Value string
	Label string
}

// RoleOptions lists the selectable roles for the filter panel.
func RoleOptions() []Option {
	return []Option{
		{Value: "founder", Label: "Founder"},
		{Value: "advisor", Label: "Advisor"},
		{Value: "investor", Label: "Investor"},
	}
}

// SkillOptions lists the selectable skills for the filter panel.
func SkillOptions() []Option {
	return []Option{
		{Value: "engineering", Label: "Engineering"},
		{Value: "design", Label: "Design"},
		{Value: "marketing", Label: "Marketing"},
		{Value: "sales", Label: "Sales"},
		{Value: "finance", Label: "Finance"},
		{Value: "operations", Label: "Operations"},
		{Value: "product", Label: "Product"},
		{Value: "data", Label: "Data Science"},
		{Value: "legal", Label: "Legal"},
		{Value: "hr", Label: "Human Resources"},
	}
}

// IndustryOptions lists the selectable industries for the filter panel.
func IndustryOptions() []Option {
	return []Option{
		{Value: "software", Label: "Software"},
		{Value: "hardware", Label: "Hardware"},
		{Value: "ai", Label: "AI / Machine Learning"},
		{Value: "biotech", Label: "Biotech"},
		{Value: "fintech", Label: "Fintech"},
		{Value: "edtech", Label: "Edtech"},
		{Value: "healthtech", Label: "Healthtech"},
		{Value: "ecommerce", Label: "E-commerce"},
		{Value: "cleantech", Label: "Cleantech"},
		{Value: "other", Label: "Other"},
	}
}

// StageOptions lists the selectable startup stages for the filter panel.
func StageOptions() []Option {
	return []Option{
		{Value: "idea", Label: "Idea Stage"},
		{Value: "mvp", Label: "MVP"},
		{Value: "pre-seed", Label: "Pre-seed"},
		{Value: "seed", Label: "Seed"},
		{Value: "series-a", Label: "Series A"},
		{Value: "series-b", Label: "Series B+"},
		{Value: "growth", Label: "Growth Stage"},
	}
}

// Location is a member's geographic position. Lat/Lon are required when a
// Location is present; the place fields are optional display metadata.
type Location struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	City      string  `yaml:"city,omitempty"`
	State     string  `yaml:"state,omitempty"`
	Country   string  `yaml:"country,omitempty"`
}

// Validate checks coordinate bounds.
func (l *Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return ErrValidation("latitude %v out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return ErrValidation("longitude %v out of range [-180, 180]", l.Longitude)
	}
	return nil
}

// Label formats the location for display: "City, Country" with missing
// parts elided.
func (l *Location) Label() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if l.City != "" {
		parts = append(parts, l.City)
	}
	if l.Country != "" {
		parts = append(parts, l.Country)
	}
	return strings.Join(parts, ", ")
}

// Startup holds optional startup metadata on a founder's entry.
type Startup struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Stage       Stage  `yaml:"stage,omitempty"`
}

// Links holds optional external profile links.
type Links struct {
	Website  string `yaml:"website,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty"`
	Twitter  string `yaml:"twitter,omitempty"`
	GitHub   string `yaml:"github,omitempty"`
}

// DirectoryEntry is one member record in the roster.
type DirectoryEntry struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Role       Role       `yaml:"role"`
	Avatar     string     `yaml:"avatar,omitempty"`
	Location   *Location  `yaml:"location,omitempty"`
	Skills     []Skill    `yaml:"skills,omitempty"`
	Industries []Industry `yaml:"industries,omitempty"`
	Bio        string     `yaml:"bio,omitempty"`
	Startup    *Startup   `yaml:"startup,omitempty"`
	LookingFor []Skill    `yaml:"looking_for,omitempty"`
	Links      Links      `yaml:"links,omitempty"`
}

// Validate checks the entry's structural invariants. ID uniqueness is
// enforced by the roster loader, not here.
func (e *DirectoryEntry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrValidation("entry id must not be empty")
	}
	if strings.TrimSpace(e.Name) == "" {
		return ErrValidation("entry %s: name must not be empty", e.ID)
	}
	if e.Role == "" {
		return ErrValidation("entry %s: role must not be empty", e.ID)
	}
	if e.Location != nil {
		if err := e.Location.Validate(); err != nil {
			return ErrValidation("entry %s: %v", e.ID, err)
		}
	}
	return nil
}

// HasLocation reports whether the entry can appear on the map.
func (e *DirectoryEntry) HasLocation() bool {
	return e.Location != nil
}

// StartupName returns the startup name or "" when no startup is attached.
func (e *DirectoryEntry) StartupName() string {
	if e.Startup == nil {
		return ""
	}
	return e.Startup.Name
}

// Initials derives the avatar-fallback initials from the display name.
func (e *DirectoryEntry) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(e.Name) {
		r := []rune(part)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return strings.ToUpper(b.String())
}
