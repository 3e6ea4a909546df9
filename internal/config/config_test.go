package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9000
store:
  backend: rest
  base_url: https://data.example.com
  api_key: secret
redis:
  enabled: true
  addr: redis:6379
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "rest", cfg.Store.Backend)
	assert.Equal(t, "https://data.example.com", cfg.Store.BaseURL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, 1000, cfg.Store.PageSize)
	assert.Equal(t, 3, cfg.Store.MaxRetries)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [not a mapping"))
	assert.Error(t, err)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORTAL_STORE_BACKEND", "snowflake")
	t.Setenv("SNOWFLAKE_ACCOUNT", "xy12345")
	t.Setenv("SNOWFLAKE_USER", "reporter")
	t.Setenv("SNOWFLAKE_PASSWORD", "hunter2")
	t.Setenv("DATABASE_URL", "postgres://override")
	t.Setenv("REDIS_ADDR", "envredis:6379")
	t.Setenv("PORT", "8181")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv(writeConfig(t, `
store:
  backend: postgres
database:
  url: postgres://from-yaml
`))
	require.NoError(t, err)

	assert.Equal(t, "snowflake", cfg.Store.Backend)
	assert.Equal(t, "xy12345", cfg.Snowflake.Account)
	assert.Equal(t, "reporter", cfg.Snowflake.User)
	assert.Equal(t, "postgres://override", cfg.Database.URL)
	assert.Equal(t, "envredis:6379", cfg.Redis.Addr)
	// Setting REDIS_ADDR turns the preference store on.
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadFromEnv(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
