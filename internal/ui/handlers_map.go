package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foundermap/internal/domain"
	"foundermap/internal/geomap"
	"foundermap/internal/session"
)

// visibleEntries is the slice of the roster the map shows: the viewer plus
// everyone else. Entries without a location are skipped by the
// synchronizer itself.
func (h *Handler) visibleEntries(viewerID string) []domain.DirectoryEntry {
	out := make([]domain.DirectoryEntry, 0, h.Roster.Len())
	if viewer, err := h.Roster.ByID(viewerID); err == nil {
		out = append(out, viewer)
	}
	return append(out, h.Roster.Others(viewerID)...)
}

func (h *Handler) markerViews(s *session.Session) []geomap.MarkerView {
	return s.MarkerViews(func(id string) string {
		e, err := h.Roster.ByID(id)
		if err != nil {
			return id
		}
		return e.Name
	})
}

func (h *Handler) MapPage(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	chrome, err := h.chrome(r, s, "/ui/map")
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	s.EnsureMarkers(h.visibleEntries(s.ViewerID()))

	var selected *domain.DirectoryEntry
	if id, ok := s.Selected(); ok {
		if e, err := h.Roster.ByID(id); err == nil {
			selected = &e
		}
	}

	renderHTML(w, http.StatusOK, mapPage(mapPageData{
		Chrome:       chrome,
		Selected:     selected,
		ViewerOrigin: chrome.Viewer.Location,
		CSRFToken:    csrfToken(r),
	}))
}

// MapReady is called by the map bootstrap script once the map surface has
// initialized. It flushes any deferred marker sync and returns the marker
// set and mount viewport as JSON.
func (h *Handler) MapReady(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	s.EnsureMarkers(h.visibleEntries(s.ViewerID()))
	s.MapReady()

	renderJSON(w, http.StatusOK, map[string]any{
		"markers":  h.markerViews(s),
		"viewport": s.Viewport(),
	})
}

func (h *Handler) MapSelect(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	id := chi.URLParam(r, "entryID")
	if _, err := h.Roster.ByID(id); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	s.Select(id)
	renderJSON(w, http.StatusOK, map[string]any{"selected": id})
}

func (h *Handler) MapClose(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	s.ClearSelection()
	http.Redirect(w, r, "/ui/map", http.StatusSeeOther)
}
