package common

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// WaitForValue calls fetch every tick until it returns a non-nil value or an error.
// Returns (nil, nil) if timeout is reached first.
func WaitForValue[T any](
	ctx context.Context,
	clock clockwork.Clock,
	timeout time.Duration,
	tick time.Duration,
	fetch func(ctx context.Context) (*T, error),
) (*T, error) {
	deadline := clock.After(timeout)
	for {
		value, err := fetch(ctx)
		if err != nil || value != nil {
			return value, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, nil
		case <-clock.After(tick):
		}
	}
}
