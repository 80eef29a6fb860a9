package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/quantumauth-io/quantum-go-cryptosvc/log"
)

func sleepWithContext(ctx context.Context, duration time.Duration) {
	t := time.NewTimer(duration)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Config controls the backoff and logging of Do.
type Config struct {
	MaxNumRetries                int32
	InitialDelayBeforeRetrying   time.Duration
	MaxDelayBeforeRetrying       time.Duration
	ShouldLogFirstFailure        bool
	LogEveryNthFailure           int32
	LogLevelWhenFailure          log.Level
	ShouldLogNumRetriesOnSuccess bool
	LogLevelWhenSuccess          log.Level
}

const (
	/* (S)tructured (L)ogging */
	slNumRetries = "numRetries"

	InfiniteRetries = -1
)

// DefaultConfig retries forever with a 100ms to 10s exponential backoff.
func DefaultConfig() *Config {
	return &Config{
		MaxNumRetries:                InfiniteRetries,
		InitialDelayBeforeRetrying:   100 * time.Millisecond,
		MaxDelayBeforeRetrying:       10 * time.Second,
		ShouldLogFirstFailure:        true,
		LogEveryNthFailure:           10,
		LogLevelWhenFailure:          log.WarnLevel,
		ShouldLogNumRetriesOnSuccess: false,
		LogLevelWhenSuccess:          log.DebugLevel,
	}
}

/*
Do runs fn until it succeeds, cfg.MaxNumRetries is exhausted, shouldRetryFn
rejects the error or ctx is done. Pass nil for shouldRetryFn in order to always
retry.
*/
func Do[T any](ctx context.Context, cfg *Config, fn func(ctx context.Context) (T, error),
	shouldRetryFn func(error) bool, descriptionOfOperation string) (T, error) {
	var zero T
	delay := cfg.InitialDelayBeforeRetrying
	var numRetries int32

	for {
		result, err := fn(ctx)
		if err == nil {
			if numRetries > 0 && cfg.ShouldLogNumRetriesOnSuccess {
				log.Log(cfg.LogLevelWhenSuccess, fmt.Sprintf("Ultimately succeeded: %s", descriptionOfOperation),
					zap.Int32(slNumRetries, numRetries))
			}
			return result, nil
		}

		if cfg.MaxNumRetries != InfiniteRetries && numRetries == cfg.MaxNumRetries {
			return zero, errors.Wrapf(err, "Failed after max %d retries: %s", numRetries, descriptionOfOperation)
		}

		if shouldRetryFn != nil && !shouldRetryFn(err) {
			return zero, errors.Wrapf(err, "Failed, unretryable, after %d retries: %s", numRetries,
				descriptionOfOperation)
		}

		numRetries++

		if numRetries > 1 {
			delay = min(delay*2, cfg.MaxDelayBeforeRetrying)
		}

		if (cfg.ShouldLogFirstFailure && numRetries == 1) ||
			(cfg.LogEveryNthFailure > 0 && ((numRetries % cfg.LogEveryNthFailure) == 0)) {
			log.Log(cfg.LogLevelWhenFailure, fmt.Sprintf("Retrying failure: %s", descriptionOfOperation),
				zap.Error(err), zap.Int32(slNumRetries, numRetries), zap.Duration("delayBeforeRetry", delay))
		}

		sleepWithContext(ctx, delay)
		if err2 := ctx.Err(); err2 != nil {
			return zero, errors.Wrapf(err, "Experienced context error during retry: %s - %s", descriptionOfOperation,
				err2.Error())
		}
	}
}
