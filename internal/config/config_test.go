package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("FRONTEND_ORIGIN", "")
	t.Setenv("SERVER_TIMING", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.FrontendOrigins)
	assert.Equal(t, 5, cfg.RateLimitContact)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.True(t, cfg.ServerTiming)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "  postgres://site@localhost/site  ")
	t.Setenv("FRONTEND_ORIGIN", "https://repaired.co, https://www.repaired.co,")
	t.Setenv("RATE_LIMIT_CONTACT", "not-a-number")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("BREVO_SANDBOX", "true")
	t.Setenv("SERVER_TIMING", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://site@localhost/site", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://repaired.co", "https://www.repaired.co"}, cfg.FrontendOrigins)
	assert.Equal(t, 5, cfg.RateLimitContact)
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.BrevoSandbox)
	assert.False(t, cfg.ServerTiming)
}
