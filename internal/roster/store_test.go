package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundermap/internal/domain"
)

func TestLoad_DefaultFixture(t *testing.T) {
	s, err := Load(DefaultFixture())
	require.NoError(t, err)
	assert.Equal(t, 8, s.Len())

	e, err := s.ByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", e.Name)
	assert.Equal(t, domain.RoleFounder, e.Role)
	require.NotNil(t, e.Location)
	assert.InDelta(t, 37.7749, e.Location.Latitude, 1e-9)
	require.NotNil(t, e.Startup)
	assert.Equal(t, "MediScan AI", e.Startup.Name)
	assert.Equal(t, domain.StageMVP, e.Startup.Stage)
}

func TestParseFixture_Errors(t *testing.T) {
	t.Run("duplicate_id_is_load_error", func(t *testing.T) {
		data := []byte(`
entries:
  - id: "1"
    name: A
    role: founder
  - id: "1"
    name: B
    role: advisor
`)
		_, err := ParseFixture(data)
		require.Error(t, err)
		var lerr *domain.LoadError
		require.ErrorAs(t, err, &lerr)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("invalid_entry_is_load_error", func(t *testing.T) {
		data := []byte(`
entries:
  - id: "1"
    name: A
    role: founder
    location:
      latitude: 200
      longitude: 0
`)
		_, err := ParseFixture(data)
		require.Error(t, err)
		var lerr *domain.LoadError
		require.ErrorAs(t, err, &lerr)
	})

	t.Run("unparseable_yaml", func(t *testing.T) {
		_, err := ParseFixture([]byte("entries: [whoops"))
		require.Error(t, err)
		var lerr *domain.LoadError
		require.ErrorAs(t, err, &lerr)
	})

	t.Run("empty_fixture", func(t *testing.T) {
		_, err := ParseFixture([]byte("entries: []"))
		require.Error(t, err)
	})
}

func TestStore_Others(t *testing.T) {
	s, err := Load(DefaultFixture())
	require.NoError(t, err)

	t.Run("excludes_viewer_preserves_order", func(t *testing.T) {
		others := s.Others("1")
		assert.Len(t, others, s.Len()-1)
		for _, e := range others {
			assert.NotEqual(t, "1", e.ID)
		}
		// Fixture order minus the viewer.
		assert.Equal(t, "2", others[0].ID)
		assert.Equal(t, "8", others[len(others)-1].ID)
	})

	t.Run("every_viewer", func(t *testing.T) {
		for _, viewer := range s.All() {
			others := s.Others(viewer.ID)
			assert.Len(t, others, s.Len()-1)
			for _, e := range others {
				assert.NotEqual(t, viewer.ID, e.ID)
			}
		}
	})

	t.Run("unknown_viewer_returns_all", func(t *testing.T) {
		assert.Len(t, s.Others("nope"), s.Len())
	})
}

func TestStore_ByID_NotFound(t *testing.T) {
	s, err := Load(DefaultFixture())
	require.NoError(t, err)

	_, err = s.ByID("999")
	require.Error(t, err)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
