package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:test?mode=memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.RentalAPIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, "Cash", cfg.DefaultPaymentMethod)
	assert.Equal(t, "dev-secret-change-in-production", cfg.JWTSecret)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/rentals")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresSecretInProduction(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/rentals")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
