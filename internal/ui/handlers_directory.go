package ui

import (
	"net/http"
	"net/url"
	"strconv"

	"foundermap/internal/directory"
	"foundermap/internal/domain"
)

// queryFromRequest parses the directory filter form. Multi-valued facets
// repeat the parameter (role=founder&role=advisor). Unknown values are
// passed through; they simply match nothing.
func queryFromRequest(values url.Values, origin *domain.Location) directory.Query {
	q := directory.Query{Text: values.Get("q")}

	for _, v := range values["role"] {
		q.Facets.Roles = append(q.Facets.Roles, domain.Role(v))
	}
	for _, v := range values["industry"] {
		q.Facets.Industries = append(q.Facets.Industries, domain.Industry(v))
	}
	for _, v := range values["skill"] {
		q.Facets.Skills = append(q.Facets.Skills, domain.Skill(v))
	}
	for _, v := range values["stage"] {
		q.Facets.Stages = append(q.Facets.Stages, domain.Stage(v))
	}

	if raw := values.Get("distance"); raw != "" {
		if km, err := strconv.ParseFloat(raw, 64); err == nil && km > 0 {
			q.Facets.DistanceKm = km
			q.Facets.Origin = origin
		}
	}
	return q
}

func (h *Handler) DirectoryList(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	chrome, err := h.chrome(r, s, "/ui/directory")
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	query := queryFromRequest(r.URL.Query(), chrome.Viewer.Location)
	matches := directory.Filter(h.Roster.All(), query)

	// The filtered roster also drives the map's marker set, so switching
	// to the map after a search shows the same members.
	s.SyncMarkers(withViewer(matches, chrome.Viewer))

	renderHTML(w, http.StatusOK, directoryPage(directoryPageData{
		Chrome:  chrome,
		Query:   query,
		RawQ:    r.URL.Query().Get("q"),
		Entries: matches,
		Total:   h.Roster.Len(),
	}))
}

// withViewer ensures the viewer's own entry is part of the visible set
// even when it does not match the filter.
func withViewer(matches []domain.DirectoryEntry, viewer domain.DirectoryEntry) []domain.DirectoryEntry {
	for i := range matches {
		if matches[i].ID == viewer.ID {
			return matches
		}
	}
	out := make([]domain.DirectoryEntry, 0, len(matches)+1)
	out = append(out, viewer)
	return append(out, matches...)
}
