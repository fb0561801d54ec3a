package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://jobs.example.com/, http://localhost:5173 ,")
	t.Setenv("RATE_LIMIT_SWIPE_THRESHOLD", "30")
	t.Setenv("RATE_LIMIT_GLOBAL_THRESHOLD", "not-a-number")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://jobs.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimitSwipeThreshold)
	assert.Equal(t, 300, cfg.RateLimitGlobalThreshold)
	assert.False(t, cfg.RunMigrations)
}
