package geomap

import (
	"foundermap/internal/domain"
)

// Synchronizer reconciles the marker arena against the currently visible
// entries. Not safe for concurrent use; each session owns one synchronizer
// and serializes access to it.
type Synchronizer struct {
	markers map[string]*MarkerState
	order   []string // render order, follows the visible-set order

	// Map-surface readiness gate. Syncs requested before the surface
	// reports ready are held (latest wins) and flushed by Ready, which
	// fires at most once per mount.
	ready   bool
	pending *pendingSync

	viewport    *Viewport // computed once per mount
	clickTarget func(id string) string
}

type pendingSync struct {
	visible  []domain.DirectoryEntry
	viewerID string
}

// NewSynchronizer creates an empty, not-yet-ready synchronizer.
// clickTarget maps an entry id to the URL the map surface requests when
// that marker is clicked; nil means markers carry no click target.
func NewSynchronizer(clickTarget func(id string) string) *Synchronizer {
	return &Synchronizer{
		markers:     make(map[string]*MarkerState),
		clickTarget: clickTarget,
	}
}

// Ready marks the map surface as initialized and flushes any sync that was
// requested before readiness. Calling Ready again is a no-op.
func (s *Synchronizer) Ready() Changes {
	if s.ready {
		return Changes{}
	}
	s.ready = true
	if s.pending == nil {
		return Changes{}
	}
	p := s.pending
	s.pending = nil
	return s.apply(p.visible, p.viewerID)
}

// Sync reconciles the arena with the visible entries. Entries without a
// location are ignored (they only appear in the list view). The viewer's
// entry, when present in visible, gets the pulsing viewer style.
//
// Before the surface is ready the call is deferred: the arguments are held
// and applied by Ready.
func (s *Synchronizer) Sync(visible []domain.DirectoryEntry, viewerID string) Changes {
	if !s.ready {
		s.pending = &pendingSync{visible: visible, viewerID: viewerID}
		return Changes{}
	}
	return s.apply(visible, viewerID)
}

func (s *Synchronizer) apply(visible []domain.DirectoryEntry, viewerID string) Changes {
	var ch Changes

	target := make(map[string]struct{}, len(visible))
	order := make([]string, 0, len(visible))

	for i := range visible {
		e := &visible[i]
		if !e.HasLocation() {
			continue
		}
		target[e.ID] = struct{}{}
		order = append(order, e.ID)

		style := StyleFor(e.Role, e.ID == viewerID)
		if m, ok := s.markers[e.ID]; ok {
			// Update in place, and only when a style-relevant field
			// actually changed. Bio edits and the like must not touch
			// the marker.
			if m.Role != e.Role || m.Style != style ||
				m.Lat != e.Location.Latitude || m.Lon != e.Location.Longitude {
				m.Role = e.Role
				m.Style = style
				m.Lat = e.Location.Latitude
				m.Lon = e.Location.Longitude
				ch.Updated = append(ch.Updated, e.ID)
			}
			continue
		}

		s.markers[e.ID] = &MarkerState{
			ID:    e.ID,
			Role:  e.Role,
			Lat:   e.Location.Latitude,
			Lon:   e.Location.Longitude,
			Style: style,
		}
		ch.Created = append(ch.Created, e.ID)
	}

	// Destroy markers whose entries left the visible set or lost their
	// location. Any open popup goes with the marker.
	for id := range s.markers {
		if _, keep := target[id]; !keep {
			delete(s.markers, id)
			ch.Removed = append(ch.Removed, id)
		}
	}

	s.order = order

	// Initial camera: once per mount, viewer location if present, else the
	// neutral global default. Later syncs never re-center; they must not
	// fight user pan/zoom.
	if s.viewport == nil {
		vp := globalViewport
		for i := range visible {
			if visible[i].ID == viewerID && visible[i].HasLocation() {
				vp = Viewport{
					CenterLat: visible[i].Location.Latitude,
					CenterLon: visible[i].Location.Longitude,
					Zoom:      viewerZoom,
				}
				break
			}
		}
		s.viewport = &vp
	}

	return ch
}

// Marker returns the live MarkerState for an entry id, or nil when no such
// marker is rendered.
func (s *Synchronizer) Marker(id string) *MarkerState {
	return s.markers[id]
}

// Len returns the number of rendered markers.
func (s *Synchronizer) Len() int {
	return len(s.markers)
}

// Viewport returns the mount camera, or the neutral default before the
// first applied sync.
func (s *Synchronizer) Viewport() Viewport {
	if s.viewport == nil {
		return globalViewport
	}
	return *s.viewport
}

// OpenPopup marks the entry's popup open. Exclusivity is the selection
// controller's contract; the synchronizer only tracks the flag.
func (s *Synchronizer) OpenPopup(id string) {
	if m, ok := s.markers[id]; ok {
		m.PopupOpen = true
	}
}

// ClosePopup marks the entry's popup closed.
func (s *Synchronizer) ClosePopup(id string) {
	if m, ok := s.markers[id]; ok {
		m.PopupOpen = false
	}
}

// MarkerViews renders the arena into the map-surface tuple contract, in
// visible-set order. Names are resolved by the caller-supplied lookup so
// the synchronizer itself stays free of roster concerns.
func (s *Synchronizer) MarkerViews(nameOf func(id string) string) []MarkerView {
	out := make([]MarkerView, 0, len(s.order))
	for _, id := range s.order {
		m, ok := s.markers[id]
		if !ok {
			continue
		}
		v := MarkerView{
			ID:        m.ID,
			Lat:       m.Lat,
			Lon:       m.Lon,
			Color:     m.Style.Color,
			Pulsing:   m.Style.Pulsing,
			SizePx:    m.Style.SizePx,
			PopupOpen: m.PopupOpen,
		}
		if nameOf != nil {
			v.Name = nameOf(m.ID)
		}
		if s.clickTarget != nil {
			v.ClickTarget = s.clickTarget(m.ID)
		}
		out = append(out, v)
	}
	return out
}
