package caronsale

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// RateLimiter throttles outbound API calls with a token bucket and caps the
// number of calls a single run may make. It never retries: a refused call
// fails the run.
type RateLimiter struct {
	limiter  *rate.Limiter
	calls    atomic.Int64
	maxCalls int64
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst. maxCalls <= 0 disables the budget.
func NewRateLimiter(perSecond float64, burst int, maxCalls int64) *RateLimiter {
	return &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxCalls: maxCalls,
	}
}

// Wait blocks until the bucket allows the call or ctx is canceled. It
// returns ErrCallBudgetExhausted once the run budget is spent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.maxCalls > 0 && r.calls.Load() >= r.maxCalls {
		return fmt.Errorf("%w (%d/%d)", ErrCallBudgetExhausted, r.calls.Load(), r.maxCalls)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.calls.Add(1)
	return nil
}

// Calls returns the number of calls admitted so far.
func (r *RateLimiter) Calls() int64 {
	return r.calls.Load()
}

// Remaining returns the number of calls left in the budget, or -1 when the
// budget is disabled.
func (r *RateLimiter) Remaining() int64 {
	if r.maxCalls <= 0 {
		return -1
	}
	return max(r.maxCalls-r.calls.Load(), 0)
}
