package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/widgetpanel/internal/config"
)

func TestNew_AutoUsesJSONForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, config.LogFormatAuto)

	logger.Info("color changed", "color", "#00ff00")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "color changed", entry["msg"])
	assert.Equal(t, "#00ff00", entry["color"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, config.LogFormatText)

	logger.Info("read time changed", "read_time", "00:01")

	assert.Contains(t, buf.String(), "msg=\"read time changed\"")
	assert.Contains(t, buf.String(), "read_time=00:01")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, config.LogFormatJSON)

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
