package ui

import (
	"strconv"

	"foundermap/internal/directory"
	"foundermap/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type directoryPageData struct {
	Chrome  pageChrome
	Query   directory.Query
	RawQ    string
	Entries []domain.DirectoryEntry
	Total   int
}

var distanceOptions = []struct {
	Value string
	Label string
}{
	{"", "Anywhere"},
	{"500", "Within 500 km"},
	{"1000", "Within 1,000 km"},
	{"5000", "Within 5,000 km"},
}

func directoryPage(d directoryPageData) Node {
	cards := make([]Node, 0, len(d.Entries))
	for i := range d.Entries {
		cards = append(cards, memberCard(&d.Entries[i], &d.Chrome))
	}
	results := Node(emptyStateCard("No members match the current filters."))
	if len(cards) > 0 {
		results = Div(Class("member-grid"), Group(cards))
	}

	return appPage(
		"Directory",
		"directory",
		d.Chrome,
		Div(
			Class("directory-layout"),
			facetSidebar(d),
			Div(
				Class("directory-main"),
				Div(
					Class(cardClass("toolbar")),
					P(Class(mutedClass()+" mb-0"), Text(
						"Showing "+strconv.Itoa(len(d.Entries))+" of "+strconv.Itoa(d.Total)+" members.",
					)),
				),
				results,
			),
		),
	)
}

// facetSidebar is one GET form: the text box, facet checkboxes, and the
// distance select all submit together.
func facetSidebar(d directoryPageData) Node {
	return Form(
		Method("get"),
		Action("/ui/directory"),
		Class(cardClass("facet-sidebar")),
		Div(
			Class("mb-3"),
			Label(Class("sr-only"), Text("Search")),
			Input(
				Type("search"), Class("form-control"), Name("q"), Value(d.RawQ),
				Placeholder("Search name, startup, or location"), AutoComplete("off"),
			),
		),
		facetGroup("Role", "role", domain.RoleOptions(), roleStrings(d.Query.Facets.Roles)),
		facetGroup("Industry", "industry", domain.IndustryOptions(), industryStrings(d.Query.Facets.Industries)),
		facetGroup("Skills", "skill", domain.SkillOptions(), skillStrings(d.Query.Facets.Skills)),
		facetGroup("Stage", "stage", domain.StageOptions(), stageStrings(d.Query.Facets.Stages)),
		distanceGroup(d.Query.Facets.DistanceKm, d.Chrome.Viewer.Location != nil),
		Div(
			Class("d-flex gap-2 mt-3"),
			Button(Type("submit"), Class(primaryButtonClass()), Text("Apply filters")),
			A(Href("/ui/directory"), Class(secondaryButtonClass()), Text("Reset")),
		),
	)
}

func facetGroup(title, name string, options []domain.Option, selected []string) Node {
	checked := make(map[string]bool, len(selected))
	for _, v := range selected {
		checked[v] = true
	}
	boxes := make([]Node, 0, len(options))
	for _, opt := range options {
		input := Input(Type("checkbox"), Name(name), Value(opt.Value))
		if checked[opt.Value] {
			input = Input(Type("checkbox"), Name(name), Value(opt.Value), Checked())
		}
		boxes = append(boxes, Label(
			Class("d-flex flex-items-center gap-2 facet-option"),
			input,
			Span(Text(opt.Label)),
		))
	}
	return Details(
		Class("facet-group mb-2"),
		Open(),
		Summary(Class("facet-group-title"), Text(title)),
		Div(Class("facet-options"), Group(boxes)),
	)
}

func distanceGroup(current float64, viewerHasLocation bool) Node {
	if !viewerHasLocation {
		return Div(
			Class("facet-group mb-2"),
			P(Class(mutedClass()), Text("Distance filtering needs a location on your profile.")),
		)
	}
	currentStr := ""
	if current > 0 {
		currentStr = strconv.FormatFloat(current, 'f', -1, 64)
	}
	options := make([]Node, 0, len(distanceOptions))
	for _, opt := range distanceOptions {
		o := Option(Value(opt.Value), Text(opt.Label))
		if opt.Value == currentStr {
			o = Option(Value(opt.Value), Selected(), Text(opt.Label))
		}
		options = append(options, o)
	}
	return Details(
		Class("facet-group mb-2"),
		Open(),
		Summary(Class("facet-group-title"), Text("Distance")),
		Select(Class("form-select"), Name("distance"), Group(options)),
	)
}

func memberCard(e *domain.DirectoryEntry, chrome *pageChrome) Node {
	nameLine := []Node{A(Href("/ui/profile/" + e.ID), Class("member-name"), Text(e.Name))}
	if e.ID == chrome.Viewer.ID {
		nameLine = append(nameLine, statusLabel("You", "accent"))
	}

	body := []Node{
		Div(
			Class("d-flex flex-items-center gap-3 mb-2"),
			avatarNode(e, "md"),
			Div(
				Div(Class("d-flex flex-items-center gap-2"), Group(nameLine)),
				roleBadge(e.Role),
			),
		),
	}
	if e.Startup != nil {
		body = append(body, P(Class("mb-1"), Strong(Text(e.Startup.Name)), stageSuffix(e.Startup.Stage)))
	}
	if loc := e.Location.Label(); loc != "" {
		body = append(body, P(Class(mutedClass()+" mb-1"), Text(loc+distanceSuffix(chrome.Viewer.Location, e.Location))))
	}
	if e.Bio != "" {
		body = append(body, P(Class("member-bio mb-2"), Text(e.Bio)))
	}
	if len(e.Skills) > 0 {
		tags := make([]Node, 0, len(e.Skills))
		for _, sk := range e.Skills {
			tags = append(tags, Span(Class("Label mr-1"), Text(string(sk))))
		}
		body = append(body, Div(Class("mb-2"), Group(tags)))
	}
	body = append(body, Div(
		Class("d-flex gap-2"),
		A(Href("/ui/profile/"+e.ID), Class(secondaryButtonClass()), Text("View profile")),
		A(Href("/ui/messages/"+e.ID), Class(secondaryButtonClass()), Text("Message")),
	))

	return Div(Class(cardClass("member-card")), Group(body))
}

func roleStrings(vals []domain.Role) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func industryStrings(vals []domain.Industry) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func skillStrings(vals []domain.Skill) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func stageStrings(vals []domain.Stage) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
