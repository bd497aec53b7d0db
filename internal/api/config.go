package api

import (
	"os"
	"strconv"
)

// Config holds everything needed to talk to the dashboard API.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8000/api".
	BaseURL string

	// SessionCookieName / SessionCookie identify the authenticated session.
	// The value is seeded into the cookie jar so every call carries it.
	SessionCookieName string
	SessionCookie     string

	// CSRFCookieName is the cookie the server stores the anti-forgery token
	// in; CSRFHeader is the header it expects the token back on writes.
	CSRFCookieName string
	CSRFHeader     string

	// LogCalls enables one-line-per-request diagnostics on stderr.
	LogCalls bool
}

// DefaultConfig returns a Config pointed at a local development server.
func DefaultConfig() Config {
	return Config{
		BaseURL:           "http://localhost:8000/api",
		SessionCookieName: "sessionid",
		CSRFCookieName:    "csrftoken",
		CSRFHeader:        "X-CSRFToken",
	}
}

// LoadConfig reads API configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LOUSA_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LOUSA_SESSION"); v != "" {
		cfg.SessionCookie = v
	}
	if v := os.Getenv("LOUSA_SESSION_COOKIE"); v != "" {
		cfg.SessionCookieName = v
	}
	if v := os.Getenv("LOUSA_CSRF_COOKIE"); v != "" {
		cfg.CSRFCookieName = v
	}
	if v := os.Getenv("LOUSA_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
