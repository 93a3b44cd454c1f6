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
	"go.uber.org/zap/zapcore"
)

func TestNewWithoutFileReturnsNop(t *testing.T) {
	t.Parallel()

	log, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesJSONLinesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rai.log")
	log, err := New(Options{File: path, Level: "DEBUG"})
	require.NoError(t, err)

	log.Debug("document summarized", zap.String("module", "upload"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "document summarized", entry["message"])
	assert.Equal(t, "upload", entry["module"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	log, err := New(Options{File: filepath.Join(t.TempDir(), "rai.log"), Level: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{File: filepath.Join(t.TempDir(), "rai.log"), Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "chatty"`)
}
