// Package app provides application-level wiring for the founder map server.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"foundermap/internal/chat"
	"foundermap/internal/config"
	"foundermap/internal/roster"
	"foundermap/internal/session"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// Services groups the service pointers the UI handler and router need.
type Services struct {
	Roster   *roster.Store
	Chat     *chat.Service
	Sessions *session.Manager
}

// App holds the fully-wired application.
type App struct {
	Services      Services
	DefaultViewer string // roster entry id used as the demo viewer for new sessions
}

// New wires the roster store, chat service, and session manager from the
// provided deps. A roster that fails to load is fatal: the whole UI is a
// view over it.
func New(deps Deps) (*App, error) {
	cfg := deps.Cfg

	fixture := roster.DefaultFixture()
	if cfg.FixturePath != "" {
		data, err := os.ReadFile(cfg.FixturePath)
		if err != nil {
			return nil, fmt.Errorf("read roster fixture %s: %w", cfg.FixturePath, err)
		}
		fixture = data
		deps.Logger.Info("using external roster fixture", "path", cfg.FixturePath)
	}

	store, err := roster.Load(fixture)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	deps.Logger.Info("roster loaded", "entries", store.Len())

	viewer := cfg.DefaultViewer
	if viewer == "" {
		viewer = store.All()[0].ID
	} else if _, err := store.ByID(viewer); err != nil {
		return nil, fmt.Errorf("default viewer: %w", err)
	}

	sessions := session.NewManager(func(id string) string {
		return "/ui/map/select/" + id
	})

	return &App{
		Services: Services{
			Roster:   store,
			Chat:     chat.NewService(store),
			Sessions: sessions,
		},
		DefaultViewer: viewer,
	}, nil
}
