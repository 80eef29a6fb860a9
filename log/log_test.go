package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelZap(t *testing.T) {
	tests := []struct {
		in   Level
		want zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{WarnLevel, zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{DPanicLevel, zapcore.DPanicLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Zap(), string(tt.in))
	}
}

func TestLogRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer SetLoggerForTesting(zap.New(core))()

	Debug("dropped")
	Info("dropped")
	Warn("kept", zap.String("k", "v"))
	Error("kept too")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
	assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestSetLoggerForTestingRestores(t *testing.T) {
	before := L()
	restore := SetLoggerForTesting(zap.NewNop())
	assert.NotSame(t, before, L())
	restore()
	assert.Same(t, before, L())
}

func TestNew(t *testing.T) {
	l, err := New(Config{Level: ErrorLevel, Encoding: "console"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))

	_, err = New(Config{Encoding: "xml"})
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	defer SetLoggerForTesting(L())()
	require.NoError(t, Init(Config{Level: DebugLevel, Development: true}))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}
