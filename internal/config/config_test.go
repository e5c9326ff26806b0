package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ADMIN_USERNAME", "ADMIN_PASSWORD", "SEED_COUNT", "SESSION_BACKEND", "RATE_LIMIT_PER_MINUTE", "CLOUDINARY_CLOUD_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "admin", cfg.AdminUsername)
	require.Equal(t, "admin123", cfg.AdminPassword)
	require.Equal(t, 50, cfg.SeedCount)
	require.Equal(t, "memory", cfg.SessionBackend)
	require.Equal(t, 300, cfg.RateLimitPerMinute)
	require.False(t, cfg.CloudinaryEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SEED_COUNT", "12")
	t.Setenv("SEED_RANDOM", "77")
	t.Setenv("SESSION_BACKEND", "file")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg := Load()
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 12, cfg.SeedCount)
	require.Equal(t, uint64(77), cfg.SeedRandom)
	require.Equal(t, "file", cfg.SessionBackend)
	require.True(t, cfg.CloudinaryEnabled())
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SEED_COUNT", "lots")
	require.Equal(t, 50, getEnvInt("SEED_COUNT", 50))
}
