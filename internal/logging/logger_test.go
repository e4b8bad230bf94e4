package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"depositbri/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, &config.LogConfig{Level: "warn", Format: "json", TimeFormat: "15:04"})
	logger.Info("hidden")
	logger.Warn("balance adjusted", "amount", 50000)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "balance adjusted", line["msg"])
	assert.EqualValues(t, 50000, line["amount"])
	assert.NotContains(t, buf.String(), "hidden")
	assert.Same(t, logger, slog.Default())
}

func TestNewWithWriter_UnknownLevelFallsBackToInfo(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, &config.LogConfig{Level: "loud", Format: "text"})
	logger.Debug("debug line")
	logger.Info("info line")
	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}
