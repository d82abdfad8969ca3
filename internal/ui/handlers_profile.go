package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ProfileDetail(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	chrome, err := h.chrome(r, s, r.URL.Path)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	e, err := h.Roster.ByID(chi.URLParam(r, "entryID"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	renderHTML(w, http.StatusOK, profilePage(profilePageData{
		Chrome: chrome,
		Entry:  e,
		IsSelf: e.ID == chrome.Viewer.ID,
	}))
}

// MyProfile shows the viewer's own profile.
func (h *Handler) MyProfile(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	chrome, err := h.chrome(r, s, "/ui/me")
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, profilePage(profilePageData{
		Chrome: chrome,
		Entry:  chrome.Viewer,
		IsSelf: true,
	}))
}
