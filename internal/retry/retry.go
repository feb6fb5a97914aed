package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
)

// Policy retries read-only calendar operations on transient failures with
// exponential backoff and jitter. Write operations (create/update/cancel)
// must never go through it: the calendar API is not idempotent under retry
// and a replayed create is a duplicate booking.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    5 * time.Second,
	}
}

// Do runs op, re-issuing it while the returned error is retryable
// (429/5xx/network). The last error is returned once attempts are exhausted
// or the context ends.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.delay(attempt)):
			case <-ctx.Done():
				return httperr.NewNetwork("request cancelled while waiting to retry", ctx.Err())
			}
		}

		if err = op(ctx); err == nil {
			return nil
		}
		if !httperr.IsRetryable(err) {
			return err
		}
	}

	return err
}

func (p Policy) delay(attempt int) time.Duration {
	d := p.BaseDelay << (attempt - 1)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	// full jitter
	return time.Duration(rand.Int63n(int64(d) + 1))
}
