package logger_test

import (
	"testing"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("debug level console", func(t *testing.T) {
		l, err := logger.New(config.LogConfig{Level: "DEBUG", Format: "console"})
		require.NoError(t, err)

		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		l, err := logger.New(config.LogConfig{Level: "loud", Format: "json"})
		require.NoError(t, err)

		assert.False(t, l.Core().Enabled(zap.DebugLevel))
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	})
}
