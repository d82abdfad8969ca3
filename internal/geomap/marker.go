// Package geomap keeps a set of map markers in sync with the visible slice
// of the roster, and owns the single-selection popup model.
//
// The synchronizer is a diff-based reconciler: markers are held in an
// id-keyed arena and updated in place, so an entry that survives a roster
// or filter update keeps its MarkerState identity (no flicker from
// destroy-and-recreate).
package geomap

import "foundermap/internal/domain"

// MarkerState is the live state of one rendered marker, keyed by entry id.
type MarkerState struct {
	ID        string
	Role      domain.Role
	Lat       float64
	Lon       float64
	Style     IconStyle
	PopupOpen bool
}

// MarkerView is the tuple contract consumed by the external map surface:
// position, icon style, and the click target the surface should request
// when the marker is clicked. The core does not depend on any specific map
// provider's API shape.
type MarkerView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Color       string  `json:"color"`
	Pulsing     bool    `json:"pulsing"`
	SizePx      int     `json:"sizePx"`
	PopupOpen   bool    `json:"popupOpen"`
	ClickTarget string  `json:"clickTarget"`
}

// Viewport is the initial camera for a map mount.
type Viewport struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	Zoom      float64 `json:"zoom"`
}

// Neutral global default used when the viewer has no location.
var globalViewport = Viewport{CenterLat: 20, CenterLon: 0, Zoom: 1.5}

// viewerViewport zoom when centering on the viewer.
const viewerZoom = 3

// Changes reports what one Sync call did to the marker arena.
type Changes struct {
	Created []string
	Updated []string
	Removed []string
}

// Empty reports whether the sync was a no-op.
func (c Changes) Empty() bool {
	return len(c.Created) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}
