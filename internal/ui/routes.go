package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"foundermap/internal/ui/assets"
)

func MountRoutes(r chi.Router, h *Handler) {
	r.Use(h.EnsureCSRFToken)
	r.Use(h.RequireCSRF)

	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/ui/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/ui/map", http.StatusFound)
	})

	r.Get("/map", h.MapPage)
	r.Post("/map/ready", h.MapReady)
	r.Post("/map/select/{entryID}", h.MapSelect)
	r.Post("/map/close", h.MapClose)

	r.Get("/directory", h.DirectoryList)
	r.Get("/profile/{entryID}", h.ProfileDetail)
	r.Get("/me", h.MyProfile)

	r.Get("/messages", h.MessagesPage)
	r.Get("/messages/{peerID}", h.MessagesPage)
	r.Post("/messages/{peerID}", h.MessageSend)

	r.Post("/identity", h.IdentitySwitch)
}
