package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

var errDelayNotAllowed = errors.New("delay not allowed")

// NewRateLimit creates a new RateLimit based of time interval and how many
// actions allowed and breaks it down to an actions-per-second basis -- Burst
// rate is kept as one as this is not supported for out-bound requests.
func NewRateLimit(interval time.Duration, actions int) *rate.Limiter {
	if actions <= 0 || interval <= 0 {
		// Returns an un-restricted rate limiter
		return rate.NewLimiter(rate.Inf, 1)
	}

	i := 1 / interval.Seconds()
	rps := i * float64(actions)
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// WithLimiter makes the Requester wait on l before every dispatch. The
// connector performs no accounting of its own; the limiter is the caller's
// policy.
func WithLimiter(l *rate.Limiter) RequesterOption {
	return func(r *Requester) {
		r.limiter = l
	}
}

// Wait blocks on l until a token is available or ctx is done. When ctx carries
// WithDelayNotAllowed a token that is not immediately available is an error.
// A nil limiter never blocks.
func Wait(ctx context.Context, l *rate.Limiter) error {
	if l == nil {
		return nil
	}
	if !hasDelayNotAllowed(ctx) {
		return l.Wait(ctx)
	}
	res := l.Reserve()
	if d := res.Delay(); d > 0 {
		res.Cancel()
		return fmt.Errorf("%w: next request permitted in %s", errDelayNotAllowed, d)
	}
	return nil
}
