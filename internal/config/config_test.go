package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseURLChain(t *testing.T) {
	t.Run("defaults to production", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL())
	})

	t.Run("environment beats default", func(t *testing.T) {
		cfg := &Config{envURL: "http://localhost:8080/api"}
		assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL())
	})

	t.Run("runtime override beats environment", func(t *testing.T) {
		cfg := &Config{envURL: "http://localhost:8080/api"}
		cfg.SetBaseURL("http://staging:9090/api")
		assert.Equal(t, "http://staging:9090/api", cfg.BaseURL())
	})

	t.Run("override trims trailing slashes", func(t *testing.T) {
		cfg := &Config{}
		cfg.SetBaseURL("http://localhost:8080/api///")
		assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL())
	})

	t.Run("reset falls back through the chain", func(t *testing.T) {
		cfg := &Config{envURL: "http://localhost:8080/api"}
		cfg.SetBaseURL("http://staging:9090/api")
		cfg.ResetBaseURL()
		assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL())
	})
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://env-host/api")
	t.Setenv(EnvHTTPTimeout, "5")

	cfg := Load()

	assert.Equal(t, "http://env-host/api", cfg.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestTimeoutFallsBackOnBadValue(t *testing.T) {
	t.Setenv(EnvHTTPTimeout, "zero")

	cfg := Load()
	assert.Equal(t, defaultHTTPTimeout, cfg.HTTPTimeout)
}
