package config

import (
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIURL overrides the backend base URL for the whole process.
	// Keep the name stable: it is part of the deploy/test surface.
	EnvAPIURL = "WOULDWATCH_API_URL"

	EnvHTTPTimeout = "WOULDWATCH_HTTP_TIMEOUT_SECONDS"

	// DefaultBaseURL is the production backend.
	DefaultBaseURL = "https://would.watch/api"

	defaultHTTPTimeout = 30 * time.Second
)

// Config resolves the backend base URL through a layered chain:
// runtime override > process environment > .env file > production default.
// The runtime override models the in-app network settings screen and may
// change while requests are in flight, so access is guarded.
type Config struct {
	mu       sync.RWMutex
	override string

	envURL      string
	HTTPTimeout time.Duration
}

// Load reads the optional env file (path from WOULDWATCH_ENV_FILE or ".env").
// godotenv never clobbers variables already present in the process
// environment, which is exactly the precedence the chain needs.
func Load() *Config {
	path := os.Getenv("WOULDWATCH_ENV_FILE")
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			slog.Warn("failed to load env file", "path", path, "error", err)
		}
	} else {
		_ = godotenv.Load()
	}

	return &Config{
		envURL:      os.Getenv(EnvAPIURL),
		HTTPTimeout: timeoutFromEnv(),
	}
}

func (c *Config) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.override != "" {
		return c.override
	}
	if c.envURL != "" {
		return c.envURL
	}
	return DefaultBaseURL
}

// SetBaseURL installs a runtime override, trimming a trailing slash the
// way the settings screen does. An empty value resets to the chain below.
func (c *Config) SetBaseURL(url string) {
	for len(url) > 0 && url[len(url)-1] == '/' {
		url = url[:len(url)-1]
	}

	c.mu.Lock()
	c.override = url
	c.mu.Unlock()
}

func (c *Config) ResetBaseURL() {
	c.SetBaseURL("")
}

func timeoutFromEnv() time.Duration {
	raw := os.Getenv(EnvHTTPTimeout)
	if raw == "" {
		return defaultHTTPTimeout
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		slog.Warn("invalid HTTP timeout, using default", "value", raw)
		return defaultHTTPTimeout
	}
	return time.Duration(secs) * time.Second
}
