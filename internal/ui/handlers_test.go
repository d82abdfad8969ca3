package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundermap/internal/chat"
	"foundermap/internal/geomap"
	"foundermap/internal/roster"
	"foundermap/internal/session"
)

type testClient struct {
	t       *testing.T
	router  chi.Router
	cookies map[string]*http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	store, err := roster.Load(roster.DefaultFixture())
	require.NoError(t, err)

	sessions := session.NewManager(func(id string) string {
		return "/ui/map/select/" + id
	})
	h := NewHandler(store, chat.NewService(store), sessions, "1", false)

	r := chi.NewRouter()
	r.Route("/ui", func(r chi.Router) {
		MountRoutes(r, h)
	})
	return &testClient{t: t, router: r, cookies: make(map[string]*http.Cookie)}
}

// do performs a request, carrying cookies across calls like a browser
// would. State-changing requests send the CSRF token as the header the
// map surface's fetch calls use.
func (c *testClient) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	if method != http.MethodGet {
		if ck, ok := c.cookies[csrfCookieName]; ok {
			req.Header.Set("X-CSRF-Token", ck.Value)
		}
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *testClient) mapState() (markers []geomap.MarkerView, viewport geomap.Viewport) {
	c.t.Helper()
	rec := c.do(http.MethodPost, "/ui/map/ready", nil)
	require.Equal(c.t, http.StatusOK, rec.Code)
	var payload struct {
		Markers  []geomap.MarkerView `json:"markers"`
		Viewport geomap.Viewport     `json:"viewport"`
	}
	require.NoError(c.t, json.NewDecoder(rec.Body).Decode(&payload))
	return payload.Markers, payload.Viewport
}

func TestMapPage(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/ui/map", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="map"`)
	assert.NotNil(t, c.cookies[sessionCookie], "first visit sets the session cookie")
	assert.NotNil(t, c.cookies[csrfCookieName], "first visit sets the CSRF cookie")
}

func TestMapReady_ReturnsMarkersAndViewport(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)

	markers, viewport := c.mapState()
	require.Len(t, markers, 8, "every fixture entry has a location")

	// Viewer marker pulses and centers the camera.
	var viewer *geomap.MarkerView
	for i := range markers {
		if markers[i].ID == "1" {
			viewer = &markers[i]
		}
	}
	require.NotNil(t, viewer)
	assert.True(t, viewer.Pulsing)
	assert.Equal(t, "Sarah Chen", viewer.Name)
	assert.Equal(t, "/ui/map/select/1", viewer.ClickTarget)
	assert.InDelta(t, viewer.Lat, viewport.CenterLat, 0.001)
	assert.InDelta(t, 3.0, viewport.Zoom, 0.001)
}

func TestMapSelect_RendersDetailPanel(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)
	c.mapState()

	rec := c.do(http.MethodPost, "/ui/map/select/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selected":"3"`)

	page := c.do(http.MethodGet, "/ui/map", nil)
	body := page.Body.String()
	assert.Contains(t, body, "Aisha Patel")
	assert.Contains(t, body, "/ui/profile/3")

	// Only the selected marker's popup is open.
	markers, _ := c.mapState()
	for _, m := range markers {
		assert.Equal(t, m.ID == "3", m.PopupOpen, m.ID)
	}
}

func TestMapSelect_UnknownEntry(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)

	rec := c.do(http.MethodPost, "/ui/map/select/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMapClose_ClearsSelection(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)
	c.mapState()
	c.do(http.MethodPost, "/ui/map/select/3", nil)

	rec := c.do(http.MethodPost, "/ui/map/close", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	markers, _ := c.mapState()
	for _, m := range markers {
		assert.False(t, m.PopupOpen, m.ID)
	}
}

func TestDirectoryList_TextAndFacets(t *testing.T) {
	c := newTestClient(t)

	// Negative assertions use the profile-card links: member names also
	// appear in the identity switcher on every page.
	t.Run("unfiltered_shows_everyone", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/directory", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "/ui/profile/1")
		assert.Contains(t, body, "/ui/profile/8")
		assert.Contains(t, body, "Showing 8 of 8 members.")
	})

	t.Run("text_search", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/directory?q=chen", nil)
		body := rec.Body.String()
		assert.Contains(t, body, "/ui/profile/1")
		assert.NotContains(t, body, "/ui/profile/8")
		assert.Contains(t, body, "Showing 1 of 8 members.")
	})

	t.Run("role_facet", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/directory?role=advisor&role=investor", nil)
		body := rec.Body.String()
		assert.Contains(t, body, "/ui/profile/4")
		assert.Contains(t, body, "/ui/profile/5")
		assert.NotContains(t, body, "/ui/profile/6")
	})

	t.Run("distance_facet", func(t *testing.T) {
		// Viewer 1 is in San Francisco; 1000 km reaches only LA.
		rec := c.do(http.MethodGet, "/ui/directory?distance=1000", nil)
		body := rec.Body.String()
		assert.Contains(t, body, "/ui/profile/4")
		assert.NotContains(t, body, "/ui/profile/2")
	})
}

func TestDirectoryFilter_NarrowsMapMarkers(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)
	c.mapState()

	c.do(http.MethodGet, "/ui/directory?role=investor", nil)

	markers, _ := c.mapState()
	ids := make(map[string]bool, len(markers))
	for _, m := range markers {
		ids[m.ID] = true
	}
	assert.True(t, ids["1"], "viewer stays on the map")
	assert.True(t, ids["4"], "matching investor visible")
	assert.False(t, ids["2"], "filtered-out founder removed")
}

func TestProfileDetail(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/ui/profile/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Michael Rodriguez")
	assert.Contains(t, body, "EquiBank")
	assert.Contains(t, body, "/ui/messages/2")

	t.Run("not_found", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/profile/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMyProfile(t *testing.T) {
	c := newTestClient(t)
	rec := c.do(http.MethodGet, "/ui/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Sarah Chen")
	assert.NotContains(t, body, "/ui/messages/1", "no message button on your own profile")
}

func TestMessages(t *testing.T) {
	c := newTestClient(t)

	t.Run("sidebar_without_selection", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/messages", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Michael Rodriguez")
		assert.Contains(t, body, "Pick a conversation")
	})

	t.Run("transcript", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/messages/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "I saw your profile")
		assert.Contains(t, body, "MediScan AI")
	})

	t.Run("send_appends", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/ui/messages/2", url.Values{"content": {"See you Friday"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)

		page := c.do(http.MethodGet, "/ui/messages/2", nil)
		assert.Contains(t, page.Body.String(), "See you Friday")
	})

	t.Run("send_blank_rejected", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/ui/messages/2", url.Values{"content": {"   "}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown_peer", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/messages/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestIdentitySwitch(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)
	c.mapState()
	c.do(http.MethodPost, "/ui/map/select/3", nil)

	rec := c.do(http.MethodPost, "/ui/identity", url.Values{
		"entry_id":  {"5"},
		"return_to": {"/ui/directory"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ui/directory", rec.Header().Get("Location"))

	// Selection belonged to the previous identity.
	markers, _ := c.mapState()
	var elena *geomap.MarkerView
	for i := range markers {
		assert.False(t, markers[i].PopupOpen, markers[i].ID)
		if markers[i].ID == "5" {
			elena = &markers[i]
		}
	}
	require.NotNil(t, elena)
	assert.True(t, elena.Pulsing, "new identity's marker pulses")

	t.Run("unknown_identity", func(t *testing.T) {
		rec := c.do(http.MethodPost, "/ui/identity", url.Values{"entry_id": {"999"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestIdentitySwitch_AfterDirectoryFilter(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)
	c.mapState()

	// Filter to investors only; the set excludes advisor 5 entirely.
	c.do(http.MethodGet, "/ui/directory?role=investor", nil)

	rec := c.do(http.MethodPost, "/ui/identity", url.Values{
		"entry_id":  {"5"},
		"return_to": {"/ui/map"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	markers, viewport := c.mapState()
	var elena *geomap.MarkerView
	for i := range markers {
		if markers[i].ID == "5" {
			elena = &markers[i]
		}
	}
	require.NotNil(t, elena, "new viewer's marker joins the filtered set")
	assert.True(t, elena.Pulsing)
	assert.NotZero(t, viewport.Zoom)
}

func TestCSRFProtection(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/ui/map", nil)
	require.NotNil(t, c.cookies[csrfCookieName])

	// Raw requests below bypass the client's automatic token header.
	send := func(withToken string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/ui/map/close", nil)
		for _, ck := range c.cookies {
			req.AddCookie(ck)
		}
		if withToken != "" {
			req.Header.Set("X-CSRF-Token", withToken)
		}
		rec := httptest.NewRecorder()
		c.router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("rejects_missing_token", func(t *testing.T) {
		rec := send("")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects_mismatched_token", func(t *testing.T) {
		rec := send("not-the-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("accepts_matching_header", func(t *testing.T) {
		rec := send(c.cookies[csrfCookieName].Value)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("accepts_form_field_token", func(t *testing.T) {
		form := url.Values{"csrf_token": {c.cookies[csrfCookieName].Value}}
		req := httptest.NewRequest(http.MethodPost, "/ui/map/close", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, ck := range c.cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		c.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("forms_carry_hidden_field", func(t *testing.T) {
		rec := c.do(http.MethodGet, "/ui/map", nil)
		assert.Contains(t, rec.Body.String(), `name="csrf_token"`)
	})
}

func TestStaticAssets(t *testing.T) {
	c := newTestClient(t)
	rec := c.do(http.MethodGet, "/ui/static/app.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".map-marker")
}
