package ui

import (
	"encoding/json"
	"net/http"

	"foundermap/internal/chat"
	"foundermap/internal/roster"
	"foundermap/internal/session"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Roster        *roster.Store
	Chat          *chat.Service
	Sessions      *session.Manager
	DefaultViewer string
	Production    bool
}

func NewHandler(store *roster.Store, chatSvc *chat.Service, sessions *session.Manager, defaultViewer string, production bool) *Handler {
	return &Handler{
		Roster:        store,
		Chat:          chatSvc,
		Sessions:      sessions,
		DefaultViewer: defaultViewer,
		Production:    production,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
