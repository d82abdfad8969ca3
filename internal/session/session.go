// Package session holds per-browser view state: the viewer identity, the
// map marker arena, and the current selection. Sessions are independent;
// nothing here is ambient or global, so concurrent sessions (and tests)
// never contaminate each other.
package session

import (
	"sync"

	"foundermap/internal/domain"
	"foundermap/internal/geomap"
)

// Session is one browser session's view state. All methods are safe for
// concurrent use; the session serializes access to its synchronizer and
// selection controller.
type Session struct {
	ID string

	mu       sync.Mutex
	viewerID string
	markers  *geomap.Synchronizer
	sel      *geomap.Selection
	visible  []domain.DirectoryEntry // last synced set, nil until first sync
}

func newSession(id, viewerID string, clickTarget func(id string) string) *Session {
	s := &Session{ID: id, viewerID: viewerID}
	s.markers = geomap.NewSynchronizer(clickTarget)
	s.sel = geomap.NewSelection(s.markers)
	return s
}

// ViewerID returns the session's current viewer. Never empty once the
// session exists.
func (s *Session) ViewerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewerID
}

// SetViewer reassigns the demo identity. The selection is cleared (the
// panel and popup belonged to the previous identity's view) and the
// marker set is rebuilt around the new viewer: their entry joins the
// stored visible set so their marker always exists and pulses, even when
// the last sync was a filtered set that excluded them.
func (s *Session) SetViewer(viewer domain.DirectoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if viewer.ID == s.viewerID {
		return
	}
	s.viewerID = viewer.ID
	s.sel.Clear()
	if s.visible == nil {
		return
	}
	next := make([]domain.DirectoryEntry, 0, len(s.visible)+1)
	next = append(next, viewer)
	for i := range s.visible {
		if s.visible[i].ID == viewer.ID {
			continue
		}
		next = append(next, s.visible[i])
	}
	s.syncLocked(next)
}

// MapReady marks the session's map surface initialized, flushing any
// deferred marker sync. Idempotent.
func (s *Session) MapReady() geomap.Changes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markers.Ready()
}

// SyncMarkers reconciles the marker set with the visible entries. If the
// selected entry's marker was destroyed by the sync, the selection is
// dropped with it.
func (s *Session) SyncMarkers(visible []domain.DirectoryEntry) geomap.Changes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncLocked(visible)
}

// EnsureMarkers syncs the given default set only when the session has
// never been synced. A set narrowed by a directory filter survives page
// navigation.
func (s *Session) EnsureMarkers(visible []domain.DirectoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible != nil {
		return
	}
	s.syncLocked(visible)
}

func (s *Session) syncLocked(visible []domain.DirectoryEntry) geomap.Changes {
	s.visible = visible
	ch := s.markers.Sync(visible, s.viewerID)
	if id, ok := s.sel.Selected(); ok {
		for _, removed := range ch.Removed {
			if removed == id {
				s.sel.Drop(id)
				break
			}
		}
	}
	return ch
}

// Select transitions the selection to the given entry.
func (s *Session) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Select(id)
}

// ClearSelection closes the open popup, if any.
func (s *Session) ClearSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Clear()
}

// Selected returns the selected entry id, if any.
func (s *Session) Selected() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Selected()
}

// Observe registers a selection observer.
func (s *Session) Observe(fn func(geomap.SelectionEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Observe(fn)
}

// MarkerViews renders the session's marker arena for the map surface.
func (s *Session) MarkerViews(nameOf func(id string) string) []geomap.MarkerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markers.MarkerViews(nameOf)
}

// Viewport returns the session's mount camera.
func (s *Session) Viewport() geomap.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markers.Viewport()
}

// Manager tracks live sessions by cookie id.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	clickTarget func(id string) string
}

// NewManager creates an empty session manager. clickTarget is forwarded to
// each session's marker synchronizer.
func NewManager(clickTarget func(id string) string) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		clickTarget: clickTarget,
	}
}

// Create starts a new session for the given viewer and returns it.
func (m *Manager) Create(viewerID string) *Session {
	s := newSession(domain.NewID(), viewerID, m.clickTarget)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for an id, or false for unknown/expired ids.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
