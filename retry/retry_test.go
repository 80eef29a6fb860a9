package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quantumauth-io/quantum-go-cryptosvc/log"
)

func fastConfig(maxRetries int32) *Config {
	cfg := DefaultConfig()
	cfg.MaxNumRetries = maxRetries
	cfg.InitialDelayBeforeRetrying = time.Millisecond
	cfg.MaxDelayBeforeRetrying = 2 * time.Millisecond
	return cfg
}

func TestDoSucceedsAfterRetries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer log.SetLoggerForTesting(zap.New(core))()

	calls := 0
	got, err := Do(context.Background(), fastConfig(5), func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("busy")
		}
		return 42, nil
	}, nil, "answer")

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, calls)
	require.Equal(t, 1, logs.Len(), "only the first failure is logged")
	assert.Equal(t, "Retrying failure: answer", logs.All()[0].Message)
}

func TestDoGivesUp(t *testing.T) {
	defer log.SetLoggerForTesting(zap.NewNop())()
	boom := errors.New("boom")

	calls := 0
	_, err := Do(context.Background(), fastConfig(2), func(context.Context) (string, error) {
		calls++
		return "", boom
	}, nil, "op")

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Failed after max 2 retries: op")
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnUnretryable(t *testing.T) {
	defer log.SetLoggerForTesting(zap.NewNop())()
	fatal := errors.New("fatal")

	calls := 0
	_, err := Do(context.Background(), fastConfig(InfiniteRetries), func(context.Context) (int, error) {
		calls++
		return 0, fatal
	}, func(err error) bool { return !errors.Is(err, fatal) }, "op")

	assert.ErrorIs(t, err, fatal)
	assert.Contains(t, err.Error(), "unretryable")
	assert.Equal(t, 1, calls)
}

func TestDoHonoursContext(t *testing.T) {
	defer log.SetLoggerForTesting(zap.NewNop())()
	ctx, cancel := context.WithCancel(context.Background())

	_, err := Do(ctx, fastConfig(InfiniteRetries), func(context.Context) (int, error) {
		cancel()
		return 0, errors.New("transient")
	}, nil, "op")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}

func TestDoBacksOffUpToMax(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer log.SetLoggerForTesting(zap.New(core))()

	cfg := fastConfig(4)
	cfg.LogEveryNthFailure = 1
	_, err := Do(context.Background(), cfg, func(context.Context) (int, error) {
		return 0, errors.New("busy")
	}, nil, "op")
	require.Error(t, err)

	var delays []time.Duration
	for _, e := range logs.All() {
		delays = append(delays, e.ContextMap()["delayBeforeRetry"].(time.Duration))
	}
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 2 * time.Millisecond, 2 * time.Millisecond}, delays)
}
