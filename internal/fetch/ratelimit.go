package fetch

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces a fixed minimum spacing between consecutive requests to
// one source. It is not adaptive and does not back off.
type Limiter struct {
	l *rate.Limiter
}

func NewLimiter(minDelay time.Duration) *Limiter {
	if minDelay <= 0 {
		return &Limiter{l: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{l: rate.NewLimiter(rate.Every(minDelay), 1)}
}

// Wait blocks until the next request may be sent, or until ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
