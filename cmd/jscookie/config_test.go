package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatuh/jscookie"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigExampleFile(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	require.NoError(t, err)
	assert.Equal(t, jscookie.Config{
		Path:        "/app",
		Domain:      "example.com",
		ExpiresDays: 7,
		Secure:      true,
		SameSite:    "strict",
	}, cfg)
}

func TestLoadConfigOverlaysEnvironment(t *testing.T) {
	t.Setenv("COOKIE_PATH", "/env")
	t.Setenv("COOKIE_PARTITIONED", "true")

	path := writeFile(t, "cookie.toml", "path = \" /file \"\nsecure = false\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/file", cfg.Path)
	assert.False(t, cfg.Secure)
	assert.True(t, cfg.Partitioned)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("COOKIE_DOMAIN", "env.example")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env.example", cfg.Domain)
	assert.Equal(t, "/", cfg.Path)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(writeFile(t, "cookie.toml", "colour = \"red\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "colour"`)

	_, err = loadConfig(writeFile(t, "cookie.toml", "path = [\n"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	require.NoError(t, loadDotenv(filepath.Join(t.TempDir(), ".env")))

	// Register cleanup, then unset so the file is allowed to set it.
	t.Setenv("COOKIE_SAME_SITE", "")
	require.NoError(t, os.Unsetenv("COOKIE_SAME_SITE"))

	require.NoError(t, loadDotenv(writeFile(t, ".env", "COOKIE_SAME_SITE=lax\n")))
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "lax", cfg.SameSite)
}
