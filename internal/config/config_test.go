package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every WIDGETPANEL_ env var that Load() reads.
var allConfigKeys = []string{
	"WIDGETPANEL_LISTEN_ADDR",
	"WIDGETPANEL_DB_PATH",
	"WIDGETPANEL_PERSISTENCE",
	"WIDGETPANEL_LOG_LEVEL",
	"WIDGETPANEL_LOG_FORMAT",
	"WIDGETPANEL_LOG_FILE",
	"WIDGETPANEL_SECURE_COOKIES",
	"WIDGETPANEL_OTEL_ENDPOINT",
	"WIDGETPANEL_TUI_SCOPE",
}

// isolateConfigEnv saves and unsets all WIDGETPANEL_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores them.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "widgetpanel.db", cfg.DBPath)
	assert.True(t, cfg.Persistence)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatAuto, cfg.LogFormat)
	assert.Equal(t, "", cfg.LogFile)
	assert.False(t, cfg.SecureCookies)
	assert.False(t, cfg.TracingEnabled())
	assert.Equal(t, "terminal", cfg.TUIScope)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("WIDGETPANEL_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("WIDGETPANEL_DB_PATH", "/tmp/test.db")
	t.Setenv("WIDGETPANEL_LOG_LEVEL", "DEBUG")
	t.Setenv("WIDGETPANEL_LOG_FORMAT", "json")
	t.Setenv("WIDGETPANEL_SECURE_COOKIES", "true")
	t.Setenv("WIDGETPANEL_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("WIDGETPANEL_TUI_SCOPE", "laptop")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.True(t, cfg.SecureCookies)
	assert.True(t, cfg.TracingEnabled())
	assert.Equal(t, "laptop", cfg.TUIScope)
}

func TestLoad_PersistenceDisabledAllowsEmptyDBPath(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("WIDGETPANEL_PERSISTENCE", "false")
	t.Setenv("WIDGETPANEL_DB_PATH", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.Persistence)
}

func TestLoad_EmptyDBPathWithPersistence(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("WIDGETPANEL_DB_PATH", " ")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIDGETPANEL_DB_PATH")
}

func TestLoad_InvalidPersistenceFlag(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("WIDGETPANEL_PERSISTENCE", "maybe")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("WIDGETPANEL_LOG_LEVEL", "loud")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIDGETPANEL_LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("WIDGETPANEL_LOG_FORMAT", "xml")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIDGETPANEL_LOG_FORMAT")
}

func TestLoad_EmptyTUIScope(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("WIDGETPANEL_TUI_SCOPE", "   ")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIDGETPANEL_TUI_SCOPE")
}
