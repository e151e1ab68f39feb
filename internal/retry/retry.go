// Package retry applies a fixed policy of exponential backoff to upstream
// calls. Only the translator uses it; no other pipeline component retries.
package retry

import (
	"context"
	"time"
)

// Class buckets an upstream error for retry purposes.
type Class int

const (
	// Fatal errors are surfaced immediately.
	Fatal Class = iota
	// RateLimited maps to upstream HTTP 429.
	RateLimited
	// Overloaded maps to upstream HTTP 503 and backs off longer.
	Overloaded
)

// Classifier decides how an error from the wrapped call should be treated.
type Classifier func(error) Class

// Policy is a pure description of retry behavior, independent of the call
// it wraps.
type Policy struct {
	MaxAttempts   int
	RateLimitBase time.Duration
	OverloadBase  time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:   4,
		RateLimitBase: 2 * time.Second,
		OverloadBase:  8 * time.Second,
	}
}

// Do runs fn until it succeeds, fails fatally, or the attempt ceiling is
// reached. The delay before attempt n+1 is the class base shifted left by
// n, so consecutive transient failures back off exponentially.
func Do(ctx context.Context, p Policy, classify Classifier, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}

		var base time.Duration
		switch classify(err) {
		case RateLimited:
			base = p.RateLimitBase
		case Overloaded:
			base = p.OverloadBase
		default:
			return err
		}

		if attempt == p.MaxAttempts-1 {
			break
		}

		delay := base << uint(attempt)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
