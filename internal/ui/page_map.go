package ui

import (
	"foundermap/internal/domain"
	"foundermap/internal/geomap"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type mapPageData struct {
	Chrome       pageChrome
	Selected     *domain.DirectoryEntry
	ViewerOrigin *domain.Location
	CSRFToken    string
}

func mapPage(d mapPageData) Node {
	legendItems := make([]Node, 0, len(domain.RoleOptions()))
	for _, opt := range domain.RoleOptions() {
		legendItems = append(legendItems, Div(
			Class("d-flex flex-items-center gap-2"),
			Span(Class("legend-dot"), Style("background: "+geomap.RoleColor(domain.Role(opt.Value)))),
			Span(Class(mutedClass()), Text(opt.Label)),
		))
	}

	panel := Node(nil)
	if d.Selected != nil {
		panel = selectedMemberPanel(d.Selected, d.ViewerOrigin, d.Chrome.CSRF)
	}

	return appPage(
		"Map",
		"map",
		d.Chrome,
		Div(
			Class("map-layout"),
			Div(
				Class(cardClass("map-card")),
				Div(ID("map"), Class("map-surface")),
				Div(Class("map-legend d-flex flex-wrap gap-3 mt-2"), Group(legendItems)),
			),
			panel,
		),
		mapBootstrapScript(d.CSRFToken),
	)
}

// selectedMemberPanel is the detail card shown next to the map while a
// marker is selected.
func selectedMemberPanel(e *domain.DirectoryEntry, origin *domain.Location, csrf Node) Node {
	rows := []Node{
		Div(
			Class("d-flex flex-items-center gap-3 mb-2"),
			avatarNode(e, "lg"),
			Div(
				H2(Class("member-name mb-0"), Text(e.Name)),
				roleBadge(e.Role),
			),
		),
	}
	if e.Startup != nil {
		rows = append(rows, P(Class("mb-1"), Strong(Text(e.Startup.Name)), stageSuffix(e.Startup.Stage)))
	}
	if loc := e.Location.Label(); loc != "" {
		rows = append(rows, P(Class(mutedClass()+" mb-1"), Text(loc+distanceSuffix(origin, e.Location))))
	}
	if e.Bio != "" {
		rows = append(rows, P(Class("mb-2"), Text(e.Bio)))
	}
	rows = append(rows, Div(
		Class("d-flex gap-2"),
		A(Href("/ui/profile/"+e.ID), Class(primaryButtonClass()), Text("View profile")),
		A(Href("/ui/messages/"+e.ID), Class(secondaryButtonClass()), Text("Message")),
		Form(
			Method("post"),
			Action("/ui/map/close"),
			csrf,
			Button(Type("submit"), Class(secondaryButtonClass()), Text("Close")),
		),
	))

	return Div(Class(cardClass("map-panel")), Group(rows))
}

// mapBootstrapScript initializes Leaflet, reports readiness to the server,
// and renders the marker set the server returns. Marker clicks post the
// marker's click target and then re-render the page so the detail panel
// reflects the server-side selection. The token rides along as the
// X-CSRF-Token header on both fetch calls.
func mapBootstrapScript(csrfToken string) Node {
	return Script(Raw(`
(function () {
  var csrfHeaders = { 'X-CSRF-Token': '` + csrfToken + `' };
  var map = L.map('map', { worldCopyJump: true });
  L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors',
    maxZoom: 18
  }).addTo(map);

  fetch('/ui/map/ready', { method: 'POST', headers: csrfHeaders })
    .then(function (res) { return res.json(); })
    .then(function (state) {
      map.setView([state.viewport.centerLat, state.viewport.centerLon], state.viewport.zoom);
      state.markers.forEach(function (m) {
        var cls = 'map-marker' + (m.pulsing ? ' map-marker-pulsing' : '');
        var icon = L.divIcon({
          className: '',
          html: '<div class="' + cls + '" style="background:' + m.color +
            ';width:' + m.sizePx + 'px;height:' + m.sizePx + 'px"></div>',
          iconSize: [m.sizePx, m.sizePx],
          iconAnchor: [m.sizePx / 2, m.sizePx / 2]
        });
        var marker = L.marker([m.lat, m.lon], { icon: icon }).addTo(map);
        marker.bindPopup('<strong>' + m.name + '</strong>');
        marker.on('click', function () {
          fetch(m.clickTarget, { method: 'POST', headers: csrfHeaders }).then(function () {
            window.location.reload();
          });
        });
        if (m.popupOpen) {
          marker.openPopup();
        }
      });
    });
})();
`))
}
