package cmd

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("series generated", "days", 30)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "series generated")
	assert.Contains(t, out, "app=weathersynth")
	assert.Contains(t, out, "days=30")
	assert.NotContains(t, out, "\x1b[")
}

func TestOpenLogFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "weathersynth.log")

	f, err := openLogFile(path)
	require.NoError(t, err)
	defer f.Close()

	newLogger(f, slog.LevelInfo).Info("hello")
	require.NoError(t, f.Sync())
	assert.FileExists(t, path)
}
