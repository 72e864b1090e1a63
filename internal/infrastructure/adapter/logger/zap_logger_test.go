package logger

import (
	"errors"
	"testing"

	"github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (core.Logger, *observer.ObservedLogs) {
	zcore, logs := observer.New(zap.DebugLevel)
	return NewFromZap(zap.New(zcore)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedLogger()

	t.Run("entries below the level are dropped", func(t *testing.T) {
		log.SetLevel(core.LogLevelWarn)
		log.Debug("debug", nil)
		log.Info("info", nil)
		log.Warn("warn", nil)
		log.Error("error", nil)

		entries := logs.TakeAll()
		require.Len(t, entries, 2)
		assert.Equal(t, "warn", entries[0].Message)
		assert.Equal(t, "error", entries[1].Message)
		assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	})

	t.Run("debug is emitted once enabled", func(t *testing.T) {
		log.SetLevel(core.LogLevelDebug)
		log.Debug("debug", map[string]any{"k": 1})

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.EqualValues(t, 1, entries[0].ContextMap()["k"])
	})
}

func TestZapLogger_With(t *testing.T) {
	log, logs := newObservedLogger()

	child := log.With(map[string]any{"request_id": "abc"})
	child.Info("handled", map[string]any{"error": errors.New("boom")})

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "boom", fields["error"])
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("debug"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("verbose"))
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}
