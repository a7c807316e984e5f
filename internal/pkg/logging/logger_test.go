package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerWritesFile(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	fPath := filepath.Join(t.TempDir(), "onair.log")
	require.NoError(t, InitLogger(&LogConfig{
		Level:    zapcore.WarnLevel,
		FileName: fPath,
		MaxSize:  1,
	}))

	zap.L().Info("The station list has been refreshed.")
	zap.L().Warn("The request timeout is not set.")
	require.NoError(t, zap.L().Sync())

	content, err := os.ReadFile(fPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "refreshed")
	assert.Contains(t, string(content), `"level":"WARN"`)
	assert.Contains(t, string(content), "The request timeout is not set.")
}

func TestInitLoggerDefaults(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	require.NoError(t, InitLogger(nil))
	assert.True(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))
}
