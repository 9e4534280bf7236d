package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6432
user = "barber"
password = "secret"
dbname = "shop"
sslmode = "disable"

[logs]
level = "debug"

[metrics]
enabled = false

[chatbot]
timezone = "UTC"
conversation_ttl = "45m"
janitor_interval = "1m"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 45*time.Minute, cfg.Chatbot.ConversationTTL.Duration)
	assert.Equal(t, time.Minute, cfg.Chatbot.JanitorInterval.Duration)
	assert.Equal(t, "host=db port=6432 user=barber password=secret dbname=shop sslmode=disable", cfg.Database.DSN())

	// Незаданные поля остаются по умолчанию
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default().Server.HTTPPort, cfg.Server.HTTPPort)
	assert.Equal(t, "America/Sao_Paulo", cfg.Chatbot.Timezone)
	assert.Equal(t, 30*time.Minute, cfg.Chatbot.ConversationTTL.Duration)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_PORT", "7777")
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CONVERSATION_TTL", "10m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 7777, cfg.Database.Port)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.Equal(t, 10*time.Minute, cfg.Chatbot.ConversationTTL.Duration)
}

func TestLoad_InvalidEnvNumber(t *testing.T) {
	t.Setenv("DB_PORT", "five")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.HTTPPort = 0
	cfg.Chatbot.Timezone = "Mars/Olympus"
	cfg.Logs.Level = "loud"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "http_port")
	assert.Contains(t, err.Error(), "Mars/Olympus")
	assert.Contains(t, err.Error(), "logs.level")
}

func TestChatbotConfig_Location(t *testing.T) {
	loc, err := Default().Chatbot.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}
