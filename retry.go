package md2deck

import (
	"context"
	"time"
)

// retryPolicy runs an operation up to 1+maxRetries times with a linearly
// increasing delay between attempts (attempt index x baseDelay).
type retryPolicy struct {
	maxRetries int
	baseDelay  time.Duration
	sleep      func(time.Duration) // injectable for tests; nil = real clock
}

// do invokes attempt with a 1-based attempt number until it succeeds or
// the retry budget is exhausted, returning the last error in that case.
// The delay before attempt n is (n-1) x baseDelay.
func (p retryPolicy) do(ctx context.Context, attempt func(n int) error) error {
	var last error
	for n := 1; n <= p.maxRetries+1; n++ {
		if n > 1 {
			if err := p.wait(ctx, time.Duration(n-1)*p.baseDelay); err != nil {
				return err
			}
		}
		if last = attempt(n); last == nil {
			return nil
		}
	}
	return last
}

// wait blocks for d or until the context is cancelled.
func (p retryPolicy) wait(ctx context.Context, d time.Duration) error {
	if p.sleep != nil {
		p.sleep(d)
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
