package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8000/api", cfg.BaseURL)
	assert.Equal(t, "sessionid", cfg.SessionCookieName)
	assert.Equal(t, "csrftoken", cfg.CSRFCookieName)
	assert.Equal(t, "X-CSRFToken", cfg.CSRFHeader)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LOUSA_API_URL", "https://tutor.example.com/api")
	t.Setenv("LOUSA_SESSION", "sess-token")
	t.Setenv("LOUSA_CSRF_COOKIE", "xsrf")
	t.Setenv("LOUSA_LOG_CALLS", "true")

	cfg := LoadConfig()
	assert.Equal(t, "https://tutor.example.com/api", cfg.BaseURL)
	assert.Equal(t, "sess-token", cfg.SessionCookie)
	assert.Equal(t, "xsrf", cfg.CSRFCookieName)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_UnsetKeepsDefaults(t *testing.T) {
	t.Setenv("LOUSA_API_URL", "")
	t.Setenv("LOUSA_SESSION", "")
	t.Setenv("LOUSA_LOG_CALLS", "")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().BaseURL, cfg.BaseURL)
	assert.Empty(t, cfg.SessionCookie)
	assert.False(t, cfg.LogCalls)
}
