package config_test

import (
	"guidiqo/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 50, cfg.Newsletter.BatchSize)
	require.InDelta(t, 2.0, cfg.Newsletter.SendRate, 0.001)
	require.Equal(t, time.Hour, cfg.Images.CacheTTL)
	require.Equal(t, 100, cfg.Images.RateLimitCapacity)
	require.Equal(t, "unsplash", cfg.Images.DefaultProvider)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
images:
  rateLimitCapacity: 5
  cacheTTL: 2m
auth:
  adminEmails: [root@guidiqo.com]
`), 0o600))
	t.Setenv("PEXELS_API_KEY", "px")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Images.RateLimitCapacity)
	require.Equal(t, 2*time.Minute, cfg.Images.CacheTTL)
	require.Equal(t, "px", cfg.Images.PexelsKey)
	require.Equal(t, []string{"root@guidiqo.com"}, cfg.Auth.AdminEmails)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
