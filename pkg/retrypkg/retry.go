// Package retrypkg provides bounded execution of unreliable operations.
package retrypkg

import (
	"context"
	"time"
)

// Policy bounds a single logical operation against an upstream dependency.
//
// Attempts below 1 means a single attempt. Timeout applies per attempt;
// Delay is the fixed wait between attempts and blocks only the calling
// goroutine.
type Policy struct {
	Attempts int
	Delay    time.Duration
	Timeout  time.Duration
}

// Do runs op until it succeeds or the policy's attempts are exhausted,
// returning the last error. Cancelling ctx aborts the wait between attempts.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var (
		result T
		err    error
	)

	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		if i > 0 && p.Delay > 0 {
			timer := time.NewTimer(p.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return result, ctx.Err()
			case <-timer.C:
			}
		}

		attemptCtx := ctx

		var cancel context.CancelFunc
		if p.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		}

		result, err = op(attemptCtx)

		if cancel != nil {
			cancel()
		}

		if err == nil {
			return result, nil
		}
	}

	return result, err
}
