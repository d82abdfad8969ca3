package ui

import (
	"net/http"

	"foundermap/internal/session"
)

const sessionCookie = "fm_session"

// sessionFor returns the browser's session, creating one (and setting the
// cookie) when the request carries no valid session id. Every UI handler
// goes through here, so a fresh browser always lands in a working session.
func (h *Handler) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if s, ok := h.Sessions.Get(c.Value); ok {
			return s
		}
	}

	s := h.Sessions.Create(h.DefaultViewer)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Production,
	})
	return s
}
