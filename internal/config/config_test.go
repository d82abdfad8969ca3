package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "LOG_LEVEL", "ENV",
		"ROSTER_FIXTURE_PATH", "DEFAULT_VIEWER_ID",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.FixturePath)
	assert.Empty(t, cfg.DefaultViewer)
	assert.Equal(t, 100.0, cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ROSTER_FIXTURE_PATH", "/data/roster.yaml")
	t.Setenv("DEFAULT_VIEWER_ID", "3")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/data/roster.yaml", cfg.FixturePath)
	assert.Equal(t, "3", cfg.DefaultViewer)
	assert.Equal(t, 5.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnv_InvalidNumbers(t *testing.T) {
	t.Run("rps", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT_RPS", "fast")
		_, err := LoadFromEnv()
		require.Error(t, err)
	})

	t.Run("burst", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT_BURST", "1.5")
		_, err := LoadFromEnv()
		require.Error(t, err)
	})
}

func TestLoadFromEnv_ProductionRejectsWildcardCORS(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS")

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://map.example")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), tt.level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# demo settings
LISTEN_ADDR=:7070
LOG_LEVEL="debug"
DEFAULT_VIEWER_ID='2'

not a kv line
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Pre-set values win over the file.
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, ":7070", os.Getenv("LISTEN_ADDR"))
	assert.Equal(t, "error", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "2", os.Getenv("DEFAULT_VIEWER_ID"))

	t.Run("missing_file_is_not_an_error", func(t *testing.T) {
		require.NoError(t, LoadDotEnv(filepath.Join(dir, "nope.env")))
	})
}
