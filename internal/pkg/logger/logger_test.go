package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWith_AttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(zap.NewNop()) })

	ctx := With(context.Background(), "session", "s1")
	Warnf(ctx, "clamped %d", 7)
	Infof(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "clamped 7", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "s1", entries[0].ContextMap()["session"])
	assert.Empty(t, entries[1].ContextMap())
}

func TestInit_BadLevel(t *testing.T) {
	assert.Error(t, Init("loud", false))
	require.NoError(t, Init("debug", true))
	Set(zap.NewNop())
}
