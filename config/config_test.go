package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Equal(t, DefaultAppConfig.Web.Port, cfg.Web.Port)
	assert.Equal(t, DefaultAppConfig.Backend.BaseURL, cfg.Backend.BaseURL)
	assert.Equal(t, DefaultAppConfig.Backend.RefreshInterval, cfg.Backend.RefreshInterval)
	assert.Equal(t, "nmtweb", cfg.System.Appid)
}

func TestLoadConfigFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "nmtweb.yml")
	content := `
web:
  host: 127.0.0.1
  port: 9090
backend:
  base_url: http://backend.test/api/v1
  timeout: 5
`
	assert.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "http://backend.test/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 5, cfg.Backend.Timeout)
	// Untouched sections keep defaults.
	assert.Equal(t, DefaultAppConfig.Uploads.BaseURL, cfg.Uploads.BaseURL)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("NMTWEB_WEB_PORT", "8181")
	t.Setenv("NMTWEB_BACKEND_BASEURL", "http://env.test/api")
	t.Setenv("NMTWEB_SYSTEM_DEBUG", "false")
	t.Setenv("NMTWEB_BACKEND_REFRESH_INTERVAL", "0")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Equal(t, 8181, cfg.Web.Port)
	assert.Equal(t, "http://env.test/api", cfg.Backend.BaseURL)
	assert.False(t, cfg.System.Debug)
	assert.Equal(t, 0, cfg.Backend.RefreshInterval)
}
