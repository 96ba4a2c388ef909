package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "CollegeDB", cfg.MongoDB.Database)
	assert.Equal(t, "Students", cfg.MongoDB.Collections.Students)
	assert.Equal(t, "collegehub_session", cfg.Session.CookieName)
	assert.Equal(t, 45*time.Minute, cfg.SessionIdleTimeout())
	assert.Equal(t, 10*time.Second, cfg.MongoConnectTimeout())
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Bootstrap.EnsureDefaultAdmin)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "9090"
mongodb:
  database: TestDB
session:
  idle_timeout: 10m
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "TestDB", cfg.MongoDB.Database)
	assert.Equal(t, 10*time.Minute, cfg.SessionIdleTimeout())
	// Untouched sections keep their defaults
	assert.Equal(t, "Courses", cfg.MongoDB.Collections.Courses)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	t.Setenv("SESSION_IDLE_TIMEOUT", "not-a-duration")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBootstrapAdminRequiresPassword(t *testing.T) {
	t.Setenv("BOOTSTRAP_ENSURE_DEFAULT_ADMIN", "true")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap admin password")

	t.Setenv("BOOTSTRAP_ADMIN_PASSWORD", "BootSecret1!")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Bootstrap.EnsureDefaultAdmin)
	assert.Equal(t, "BootSecret1!", cfg.Bootstrap.AdminPassword)
}
