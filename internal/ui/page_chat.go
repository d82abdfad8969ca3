package ui

import (
	"strconv"
	"time"

	"foundermap/internal/domain"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

type messagesPageData struct {
	Chrome        pageChrome
	Conversations []domain.Conversation
	Peer          *domain.DirectoryEntry
	Transcript    []domain.Message
}

func messagesPage(d messagesPageData) Node {
	convNodes := make([]Node, 0, len(d.Conversations))
	for i := range d.Conversations {
		c := &d.Conversations[i]
		className := "conversation-link"
		if d.Peer != nil && d.Peer.ID == c.PeerID {
			className += " active"
		}
		badge := Node(nil)
		if c.Unread > 0 {
			badge = Span(Class("Counter Counter--primary"), Text(strconv.Itoa(c.Unread)))
		}
		convNodes = append(convNodes, A(
			Href("/ui/messages/"+c.PeerID),
			Class(className),
			data.Show(containsExpr(c.PeerName)),
			Div(
				Class("d-flex flex-justify-between flex-items-center"),
				Strong(Text(c.PeerName)),
				badge,
			),
			P(Class(mutedClass()+" mb-0"), Text(c.LastMessage)),
		))
	}

	sidebar := Div(
		Class(cardClass("messages-sidebar")),
		data.Signals(map[string]any{"q": ""}),
		Div(
			Class("mb-2"),
			Label(Class("sr-only"), Text("Quick filter")),
			Input(Type("search"), Class("form-control"), Placeholder("Filter conversations"), data.Bind("q"), AutoComplete("off")),
		),
		Group(convNodes),
	)

	main := Node(Div(
		Class(cardClass("messages-main blankslate")),
		P(Class("color-fg-muted"), Text("Pick a conversation to start chatting.")),
	))
	if d.Peer != nil {
		main = transcriptPanel(d)
	}

	return appPage(
		"Messages",
		"messages",
		d.Chrome,
		Div(Class("messages-layout"), sidebar, main),
	)
}

func transcriptPanel(d messagesPageData) Node {
	peer := d.Peer
	bubbles := make([]Node, 0, len(d.Transcript))
	for i := range d.Transcript {
		m := &d.Transcript[i]
		className := "message-bubble"
		if m.SenderID == d.Chrome.Viewer.ID {
			className += " message-own"
		}
		bubbles = append(bubbles, Div(
			Class(className),
			P(Class("mb-1"), Text(m.Content)),
			P(Class(mutedClass()+" mb-0"), Text(m.Timestamp.Format(time.RFC822))),
		))
	}

	return Div(
		Class(cardClass("messages-main")),
		Div(
			Class("d-flex flex-items-center gap-2 mb-3 messages-header"),
			avatarNode(peer, "md"),
			Div(
				A(Href("/ui/profile/"+peer.ID), Class("member-name"), Text(peer.Name)),
				roleBadge(peer.Role),
			),
		),
		Div(Class("message-list mb-3"), Group(bubbles)),
		Form(
			Method("post"),
			Action("/ui/messages/"+peer.ID),
			Class("d-flex gap-2"),
			d.Chrome.CSRF,
			Input(Type("text"), Class("form-control flex-1"), Name("content"), Placeholder("Write a message"), AutoComplete("off")),
			Button(Type("submit"), Class(primaryButtonClass()), Text("Send")),
		),
	)
}
