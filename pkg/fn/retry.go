package fn

import (
	"context"
	"math/rand"
	"time"
)

// RetryOpts configures Retry. MaxAttempts counts the first try; waits double
// after each failure starting from InitialWait. MaxWait caps the delay when
// positive, and Jitter randomizes each wait to avoid thundering herds.
type RetryOpts struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Jitter      bool
}

// Retry runs f until it succeeds, attempts run out, or the context is
// cancelled. The last failure (or the context error) is returned.
func Retry[T any](ctx context.Context, opts RetryOpts, f func(context.Context) Result[T]) Result[T] {
	var last Result[T]
	for attempt := 1; ; attempt++ {
		last = f(ctx)
		if last.IsOk() || attempt >= opts.MaxAttempts {
			return last
		}

		timer := time.NewTimer(backoff(opts, attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return Err[T](ctx.Err())
		case <-timer.C:
		}
	}
}

// backoff returns the wait before the attempt+1-th try.
func backoff(opts RetryOpts, attempt int) time.Duration {
	wait := opts.InitialWait
	for i := 1; i < attempt; i++ {
		wait *= 2
		if opts.MaxWait > 0 && wait >= opts.MaxWait {
			wait = opts.MaxWait
			break
		}
	}
	if opts.Jitter && wait > 0 {
		// Spread the wait over [wait/2, wait*1.5).
		wait = wait/2 + time.Duration(rand.Int63n(int64(wait)))
	}
	if opts.MaxWait > 0 && wait > opts.MaxWait {
		wait = opts.MaxWait
	}
	return wait
}

// RetryStage wraps a stage so each invocation retries per opts.
func RetryStage[In, Out any](opts RetryOpts, stage Stage[In, Out]) Stage[In, Out] {
	return func(ctx context.Context, in In) Result[Out] {
		return Retry(ctx, opts, func(ctx context.Context) Result[Out] {
			return stage(ctx, in)
		})
	}
}
