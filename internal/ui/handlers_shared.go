package ui

import (
	"errors"
	"net/http"

	"foundermap/internal/domain"
	"foundermap/internal/session"
)

// chrome assembles the per-page shell data: the viewer entry for the
// topbar, the full roster for the identity switcher, and the CSRF field
// for the shell's forms.
func (h *Handler) chrome(r *http.Request, s *session.Session, returnTo string) (pageChrome, error) {
	viewer, err := h.Roster.ByID(s.ViewerID())
	if err != nil {
		return pageChrome{}, err
	}
	return pageChrome{
		Viewer:   viewer,
		Switcher: h.Roster.All(),
		ReturnTo: returnTo,
		CSRF:     csrfField(r),
	}, nil
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else if errors.As(err, &conflict) {
		status = http.StatusConflict
		title = "Conflict"
		message = conflict.Error()
	}

	renderHTML(w, status, errorPage(title, message))
}

// IdentitySwitch reassigns the session's demo identity and returns to the
// page the switcher was used from.
func (h *Handler) IdentitySwitch(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	if err := r.ParseForm(); err != nil {
		h.renderServiceError(w, r, domain.ErrValidation("malformed form: %v", err))
		return
	}
	entry, err := h.Roster.ByID(r.Form.Get("entry_id"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	s.SetViewer(entry)

	back := r.Form.Get("return_to")
	if back == "" || back[0] != '/' {
		back = "/ui/map"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
