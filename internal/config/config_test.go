package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every recognised variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range append([]string{"SIGNALS_CONFIG"}, keysOf(envKeys)...) {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func keysOf(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIBaseURL)
	assert.Equal(t, 20*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, 2, cfg.GitHub.RateLimit.MaxRetries)
	assert.Empty(t, cfg.GitHub.Token)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GITHUB_TOKEN", "secret")
	t.Setenv("GITHUB_API_URL", "http://localhost:1234")
	t.Setenv("GITHUB_TIMEOUT_SECONDS", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SIGNALS_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.GitHub.Token)
	assert.Equal(t, "http://localhost:1234", cfg.GitHub.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 8, cfg.Batch.Workers)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "signals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\nlog_level: debug\nworkers: 2\n"), 0o600))

	t.Setenv("SIGNALS_CONFIG", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Batch.Workers)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIGNALS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
