package common

import (
	"context"
	"time"

	"github.com/NilFoundation/deployer/common/check"
	"github.com/NilFoundation/deployer/common/logging"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type RetryConfig struct {
	ShouldRetry func(attemptNumber uint32, err error) bool
	NextDelay   func(attemptNumber uint32) time.Duration
}

type RetryRunner struct {
	config RetryConfig
	clock  clockwork.Clock
	logger zerolog.Logger
}

func NewRetryRunner(config RetryConfig, clock clockwork.Clock, logger zerolog.Logger) RetryRunner {
	return RetryRunner{
		config: config,
		clock:  clock,
		logger: logger,
	}
}

func (r *RetryRunner) Do(ctx context.Context, action func(ctx context.Context) error) error {
	attemptNumber := uint32(0)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		attemptNumber++
		err := action(ctx)
		if err == nil || !r.config.ShouldRetry(attemptNumber, err) {
			return err
		}

		delay := r.config.NextDelay(attemptNumber)
		r.logger.Warn().
			Err(err).
			Uint32(logging.FieldAttempt, attemptNumber).
			Msgf("operation failed, retrying in %s", delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(delay):
		}
	}
}

// LimitRetries allows at most maxAttempts calls of the action.
func LimitRetries(maxAttempts uint32) func(attemptNumber uint32, err error) bool {
	return func(attemptNumber uint32, _ error) bool {
		return attemptNumber < maxAttempts
	}
}

// ExponentialDelay doubles baseDelay on every attempt, capped by maxDelay.
func ExponentialDelay(baseDelay, maxDelay time.Duration) func(attemptNumber uint32) time.Duration {
	check.PanicIfNotf(baseDelay <= maxDelay, "baseDelay %s > maxDelay %s", baseDelay, maxDelay)

	return func(attemptNumber uint32) time.Duration {
		result := baseDelay
		for i := uint32(1); i < attemptNumber; i++ {
			result *= 2
			if result >= maxDelay {
				return maxDelay
			}
		}
		return result
	}
}
