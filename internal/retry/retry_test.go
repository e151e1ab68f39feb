package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sublingo_go_backend/internal/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errThrottled = errors.New("throttled")
	errOverload  = errors.New("overloaded")
	errBadInput  = errors.New("bad input")
)

func classify(err error) retry.Class {
	switch {
	case errors.Is(err, errThrottled):
		return retry.RateLimited
	case errors.Is(err, errOverload):
		return retry.Overloaded
	default:
		return retry.Fatal
	}
}

func fastPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts:   4,
		RateLimitBase: time.Millisecond,
		OverloadBase:  time.Millisecond,
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastPolicy(), classify, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastPolicy(), classify, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errThrottled
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnFatalError(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastPolicy(), classify, func(ctx context.Context) error {
		calls++
		return errBadInput
	})
	assert.ErrorIs(t, err, errBadInput)
	assert.Equal(t, 1, calls)
}

func TestDoReturnsLastErrorWhenExhausted(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastPolicy(), classify, func(ctx context.Context) error {
		calls++
		return errOverload
	})
	assert.ErrorIs(t, err, errOverload)
	assert.Equal(t, 4, calls)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	policy := retry.Policy{
		MaxAttempts:   4,
		RateLimitBase: time.Hour,
		OverloadBase:  time.Hour,
	}

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- retry.Do(ctx, policy, classify, func(ctx context.Context) error {
			calls++
			return errThrottled
		})
	}()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not observe context cancellation")
	}
}

func TestDoBacksOffExponentially(t *testing.T) {
	policy := retry.Policy{
		MaxAttempts:   3,
		RateLimitBase: 20 * time.Millisecond,
		OverloadBase:  20 * time.Millisecond,
	}

	start := time.Now()
	_ = retry.Do(context.Background(), policy, classify, func(ctx context.Context) error {
		return errThrottled
	})

	// Two waits: 20ms after the first attempt, 40ms after the second.
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}
