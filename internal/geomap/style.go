package geomap

import (
	"strings"

	"foundermap/internal/domain"
)

// Marker diameters in CSS pixels. The viewer's own marker renders larger
// and pulses.
const (
	peerMarkerSizePx   = 24
	viewerMarkerSizePx = 32
)

// defaultMarkerColor is used for any role without an explicit mapping.
// Unknown roles are never an error.
const defaultMarkerColor = "#6366f1" // indigo-500

// roleColors is the total role -> marker color mapping. It covers the core
// roles plus the styling-only variants some views use.
var roleColors = map[string]string{
	"developer": "#3b82f6", // blue-500
	"designer":  "#ec4899", // pink-500
	"business":  "#10b981", // emerald-500
	"marketing": "#f59e0b", // amber-500
	"founder":   "#8b5cf6", // purple-500
	"advisor":   "#14b8a6", // teal-500
	"investor":  "#f43f5e", // rose-500
}

// RoleColor returns the marker color for a role, falling back to the
// default for unmapped roles.
func RoleColor(role domain.Role) string {
	if c, ok := roleColors[strings.ToLower(string(role))]; ok {
		return c
	}
	return defaultMarkerColor
}

// IconStyle describes how a marker is drawn.
type IconStyle struct {
	Color   string
	Pulsing bool
	SizePx  int
}

// StyleFor computes the marker style for an entry. The viewer's marker
// always pulses and uses the larger size.
func StyleFor(role domain.Role, isViewer bool) IconStyle {
	size := peerMarkerSizePx
	if isViewer {
		size = viewerMarkerSizePx
	}
	return IconStyle{
		Color:   RoleColor(role),
		Pulsing: isViewer,
		SizePx:  size,
	}
}
