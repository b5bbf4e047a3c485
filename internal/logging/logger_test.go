package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "", "bogus"} {
		logger, err := NewLogger(level, "json", "")
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, logger)
	}
}

func TestNewLoggerConsoleFormat(t *testing.T) {
	logger, err := NewLogger("info", "console", "")
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger("info", "json", path)
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
}
