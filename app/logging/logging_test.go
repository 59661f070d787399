package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/showcase/catalog-api/app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWritesRotatingFile(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	file := filepath.Join(t.TempDir(), "api.log")
	logger, err := Init(config.LoggerConfig{Mode: config.EnvProduction, Filename: file})
	require.NoError(t, err)

	zap.L().Info("catalog ready", zap.Int("products", 6))
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"catalog ready"`)
	assert.Contains(t, string(data), `"products":6`)
}

func TestInitDevelopment(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	logger, err := Init(config.LoggerConfig{Mode: config.EnvDevelopment})
	require.NoError(t, err)
	assert.Same(t, logger, zap.L())
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
