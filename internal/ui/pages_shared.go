package ui

import (
	"strconv"
	"strings"

	"foundermap/internal/domain"
	"foundermap/internal/geo"
	"foundermap/internal/geomap"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
	Icon  string
}

var navItems = []navItem{
	{Label: "Map", Href: "/ui/map", Key: "map", Icon: "map"},
	{Label: "Directory", Href: "/ui/directory", Key: "directory", Icon: "users"},
	{Label: "Messages", Href: "/ui/messages", Key: "messages", Icon: "message-circle"},
	{Label: "My Profile", Href: "/ui/me", Key: "me", Icon: "circle-user"},
}

type pageChrome struct {
	Viewer   domain.DirectoryEntry
	Switcher []domain.DirectoryEntry
	ReturnTo string
	CSRF     Node
}

func appPage(title, active string, chrome pageChrome, body ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := "app-nav-link Link--secondary d-flex flex-items-center"
		if item.Key == active {
			className += " active"
		}
		nav = append(nav, A(
			Href(item.Href),
			Class(className),
			I(Class("nav-icon"), Attr("data-lucide", item.Icon), Attr("aria-hidden", "true")),
			Span(Text(item.Label)),
		))
	}

	return HTML(
		Lang("en"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | FounderMap")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			Link(Rel("stylesheet"), Href("https://unpkg.com/leaflet@1.9.4/dist/leaflet.css")),
			Link(Rel("stylesheet"), Href("/ui/static/app.css")),
			Script(Src("https://unpkg.com/lucide@latest/dist/umd/lucide.min.js")),
			Script(Src("https://unpkg.com/leaflet@1.9.4/dist/leaflet.js")),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(Class("app-shell"),
				Aside(
					Class("app-sidebar"),
					Div(
						Class("brand"),
						Strong(Text("FounderMap")),
						P(Class("color-fg-muted text-small mb-0"), Text("Find founders, advisors, and investors")),
					),
					Nav(Class("app-nav"), Group(nav)),
				),
				Section(
					Class("app-main"),
					Div(
						Class("topbar"),
						Div(
							H1(Class("page-title"), Text(title)),
						),
						identitySwitcher(chrome),
					),
					Div(Class("content"), Group(body)),
				),
			),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
		),
	)
}

// identitySwitcher lets the demo viewer be swapped from any page.
func identitySwitcher(chrome pageChrome) Node {
	options := make([]Node, 0, len(chrome.Switcher))
	for i := range chrome.Switcher {
		e := &chrome.Switcher[i]
		opt := Option(Value(e.ID), Text(e.Name+" ("+titleCase(string(e.Role))+")"))
		if e.ID == chrome.Viewer.ID {
			opt = Option(Value(e.ID), Selected(), Text(e.Name+" ("+titleCase(string(e.Role))+")"))
		}
		options = append(options, opt)
	}
	return Div(
		Class("d-flex flex-items-center gap-2"),
		P(Class("color-fg-muted text-small mb-0"), Text("Viewing as")),
		Form(
			Method("post"),
			Action("/ui/identity"),
			chrome.CSRF,
			Input(Type("hidden"), Name("return_to"), Value(chrome.ReturnTo)),
			Select(
				Class("form-select select-sm"),
				Name("entry_id"),
				Attr("onchange", "this.form.submit()"),
				Group(options),
			),
		),
	)
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("en"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | FounderMap")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("stylesheet"), Href("/ui/static/app.css")),
		),
		Body(
			Main(
				Class("layout"),
				H1(Class("page-title"), Text(title)),
				P(Text(message)),
				P(A(Href("/ui/map"), Text("Back to the map"))),
			),
		),
	)
}

func cardClass(extra ...string) string {
	parts := []string{"Box", "p-3", "mb-3", "card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "color-fg-muted text-small"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

func secondaryButtonClass() string {
	return "btn"
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func emptyStateCard(message string) Node {
	return Div(
		Class(cardClass("blankslate")),
		P(Class("color-fg-muted mb-2"), Text(message)),
	)
}

// avatarNode renders the member's avatar image, falling back to initials.
func avatarNode(e *domain.DirectoryEntry, size string) Node {
	className := "avatar avatar-" + size
	if e.Avatar != "" {
		return Img(Class(className), Src(e.Avatar), Alt(e.Name))
	}
	return Span(Class(className+" avatar-initials"), Text(e.Initials()))
}

// roleBadge renders the member's role as a colored label matching the
// marker palette on the map.
func roleBadge(role domain.Role) Node {
	color := geomap.RoleColor(role)
	return Span(
		Class("Label role-badge"),
		Style("border-color: "+color+"; color: "+color),
		Text(titleCase(string(role))),
	)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// stageLabel maps a stage value to its display label.
func stageLabel(s domain.Stage) string {
	for _, opt := range domain.StageOptions() {
		if opt.Value == string(s) {
			return opt.Label
		}
	}
	return titleCase(string(s))
}

// stageSuffix renders " / <stage>" after a startup name, or nothing when
// the stage is unset.
func stageSuffix(s domain.Stage) Node {
	if s == "" {
		return nil
	}
	return Span(Class(mutedClass()), Text(" / "+stageLabel(s)))
}

// distanceSuffix renders " / N km away" relative to the viewer's location.
func distanceSuffix(origin, loc *domain.Location) string {
	if origin == nil || loc == nil {
		return ""
	}
	d := geo.DistanceKm(origin.Latitude, origin.Longitude, loc.Latitude, loc.Longitude)
	if d < 1 {
		return ""
	}
	return " / " + strconv.FormatFloat(d, 'f', 0, 64) + " km away"
}

func statusLabel(text, tone string) Node {
	className := "Label"
	if tone != "" {
		className += " Label--" + tone
	}
	return Span(Class(className), Text(text))
}
