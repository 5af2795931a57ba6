package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pacaro.log")

	log, closeFn, err := New(config.LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	log.Debug("request sent", zap.String("method", "GET"), zap.Int("status", 200))
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "request sent", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacaro.log")

	log, closeFn, err := New(config.LogConfig{Level: "warn", Format: "console", File: path})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
	assert.Contains(t, string(data), "WARN")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacaro.log")

	log, closeFn, err := New(config.LogConfig{Level: "loud", Format: "json", File: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_NoFileIsNop(t *testing.T) {
	log, closeFn, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	defer closeFn()

	assert.NotPanics(t, func() { log.Info("discarded") })
}
