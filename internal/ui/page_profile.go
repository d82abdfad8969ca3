package ui

import (
	"foundermap/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type profilePageData struct {
	Chrome pageChrome
	Entry  domain.DirectoryEntry
	IsSelf bool
}

func profilePage(d profilePageData) Node {
	e := &d.Entry

	title := e.Name
	active := "directory"
	if d.IsSelf {
		active = "me"
	}

	header := []Node{
		Div(
			Class("d-flex flex-items-center gap-3 mb-3"),
			avatarNode(e, "xl"),
			Div(
				H2(Class("member-name mb-1"), Text(e.Name)),
				Div(Class("d-flex flex-items-center gap-2"), roleBadge(e.Role), locationNode(e, &d.Chrome)),
			),
		),
	}
	if e.Bio != "" {
		header = append(header, P(Text(e.Bio)))
	}
	if !d.IsSelf {
		header = append(header, Div(
			Class("d-flex gap-2 mt-2"),
			A(Href("/ui/messages/"+e.ID), Class(primaryButtonClass()), Text("Message")),
			A(Href("/ui/map"), Class(secondaryButtonClass()), Text("Show on map")),
		))
	}

	sections := []Node{Div(Class(cardClass()), Group(header))}

	if e.Startup != nil {
		startup := []Node{
			H3(Class("section-title"), Text("Startup")),
			P(Class("mb-1"), Strong(Text(e.Startup.Name)), stageSuffix(e.Startup.Stage)),
		}
		if e.Startup.Description != "" {
			startup = append(startup, P(Class(mutedClass()), Text(e.Startup.Description)))
		}
		sections = append(sections, Div(Class(cardClass()), Group(startup)))
	}

	if len(e.Skills) > 0 || len(e.Industries) > 0 {
		tags := []Node{}
		if len(e.Skills) > 0 {
			tags = append(tags, tagRow("Skills", skillStrings(e.Skills)))
		}
		if len(e.Industries) > 0 {
			tags = append(tags, tagRow("Industries", industryStrings(e.Industries)))
		}
		sections = append(sections, Div(Class(cardClass()), Group(tags)))
	}

	if len(e.LookingFor) > 0 {
		sections = append(sections, Div(
			Class(cardClass()),
			tagRow("Looking for", skillStrings(e.LookingFor)),
		))
	}

	if links := linkRow(e.Links); links != nil {
		sections = append(sections, Div(
			Class(cardClass()),
			H3(Class("section-title"), Text("Links")),
			links,
		))
	}

	return appPage(title, active, d.Chrome, Group(sections))
}

func locationNode(e *domain.DirectoryEntry, chrome *pageChrome) Node {
	label := e.Location.Label()
	if label == "" {
		return Span(Class(mutedClass()), Text("No location shared"))
	}
	return Span(Class(mutedClass()), Text(label+distanceSuffix(chrome.Viewer.Location, e.Location)))
}

func tagRow(title string, values []string) Node {
	tags := make([]Node, 0, len(values))
	for _, v := range values {
		tags = append(tags, Span(Class("Label mr-1 mb-1"), Text(v)))
	}
	return Div(
		Class("mb-2"),
		H3(Class("section-title"), Text(title)),
		Div(Group(tags)),
	)
}

func linkRow(l domain.Links) Node {
	type link struct{ label, href string }
	links := []link{
		{"Website", l.Website},
		{"LinkedIn", l.LinkedIn},
		{"Twitter", l.Twitter},
		{"GitHub", l.GitHub},
	}
	nodes := make([]Node, 0, len(links))
	for _, lk := range links {
		if lk.href == "" {
			continue
		}
		nodes = append(nodes, A(Href(lk.href), Class("mr-3"), Target("_blank"), Rel("noopener"), Text(lk.label)))
	}
	if len(nodes) == 0 {
		return nil
	}
	return Div(Group(nodes))
}
