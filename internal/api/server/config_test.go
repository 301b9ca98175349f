package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ENV_PATH", t.TempDir()+"/missing.env")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("REQUEST_TIMEOUT", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
		assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("REQUEST_TIMEOUT", "250ms")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
		assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "port must be between 1 and 65535")

		t.Setenv("PORT", "http")
		_, err = LoadConfig()
		assert.ErrorContains(t, err, "port must be a number")
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid REQUEST_TIMEOUT")
	})
}
