package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foundermap/internal/domain"
)

func (h *Handler) MessagesPage(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	chrome, err := h.chrome(r, s, r.URL.Path)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	convs, err := h.Chat.Conversations(s.ViewerID())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	d := messagesPageData{Chrome: chrome, Conversations: convs}

	if peerID := chi.URLParam(r, "peerID"); peerID != "" {
		peer, err := h.Roster.ByID(peerID)
		if err != nil {
			h.renderServiceError(w, r, err)
			return
		}
		msgs, err := h.Chat.Transcript(s.ViewerID(), peerID)
		if err != nil {
			h.renderServiceError(w, r, err)
			return
		}
		d.Peer = &peer
		d.Transcript = msgs
	}

	renderHTML(w, http.StatusOK, messagesPage(d))
}

func (h *Handler) MessageSend(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFor(w, r)
	peerID := chi.URLParam(r, "peerID")
	if err := r.ParseForm(); err != nil {
		h.renderServiceError(w, r, domain.ErrValidation("malformed form: %v", err))
		return
	}
	if _, err := h.Chat.Send(s.ViewerID(), peerID, r.Form.Get("content")); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/ui/messages/"+peerID, http.StatusSeeOther)
}
