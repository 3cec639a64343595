package http

import (
	"context"
	"time"
)

// withRetry calls fn until it succeeds, waiting delays[i] after the i-th
// failure. Permanent errors and context cancellation stop the retries.
func withRetry[T any](ctx context.Context, delays []time.Duration, fn func(context.Context) (T, error)) (T, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var zero T
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if isPermanent(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}
