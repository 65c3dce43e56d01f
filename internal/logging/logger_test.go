package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantError bool
	}{
		{name: "valid json debug", level: "debug", format: "json"},
		{name: "valid console info", level: "info", format: "console"},
		{name: "valid json warn", level: "warn", format: "json"},
		{name: "valid console error", level: "error", format: "console"},
		{name: "invalid level", level: "invalid", format: "json", wantError: true},
		{name: "invalid format", level: "info", format: "invalid", wantError: true},
		{name: "case insensitive level", level: "INFO", format: "json"},
		{name: "case insensitive format", level: "info", format: "JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.format)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message", zap.Uint32("input", 13))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "warn message", entry["msg"])
	assert.EqualValues(t, 13, entry["input"])
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "console")
	require.NoError(t, err)

	logger.Info("evaluated", zap.String("operation", "factorial"))

	out := buf.String()
	assert.Contains(t, out, "evaluated")
	assert.Contains(t, out, `"operation": "factorial"`)
}
