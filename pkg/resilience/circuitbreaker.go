// Package resilience provides circuit breaker and rate limiter primitives.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tunexa/audiodb/pkg/fn"
)

// ErrCircuitOpen is returned for calls rejected by an open breaker.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is one of the three breaker states.
type State int

const (
	StateClosed   State = iota // calls pass through
	StateOpen                  // calls are rejected
	StateHalfOpen              // a limited number of probe calls pass
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// BreakerOpts configures a Breaker. FailThreshold consecutive failures trip
// it open; after Timeout it admits up to HalfOpenMax probe calls, and a
// single probe success closes it again.
type BreakerOpts struct {
	FailThreshold int
	Timeout       time.Duration
	HalfOpenMax   int
}

// DefaultBreakerOpts suit a flaky downstream probed twice a minute.
var DefaultBreakerOpts = BreakerOpts{
	FailThreshold: 5,
	Timeout:       30 * time.Second,
	HalfOpenMax:   1,
}

// Breaker keeps a downstream dependency from being hammered while it is
// failing. The zero value is not usable; construct with NewBreaker.
type Breaker struct {
	opts BreakerOpts

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probes   int
	now      func() time.Time // stubbed in tests
}

// NewBreaker builds a Breaker, filling non-positive options from
// DefaultBreakerOpts.
func NewBreaker(opts BreakerOpts) *Breaker {
	if opts.FailThreshold <= 0 {
		opts.FailThreshold = DefaultBreakerOpts.FailThreshold
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultBreakerOpts.Timeout
	}
	if opts.HalfOpenMax <= 0 {
		opts.HalfOpenMax = DefaultBreakerOpts.HalfOpenMax
	}
	return &Breaker{opts: opts, now: time.Now}
}

// State reports the breaker state, applying the open → half-open transition
// when the timeout has passed.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tick()
}

// tick advances open → half-open once the timeout elapses. Callers hold mu.
func (b *Breaker) tick() State {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.opts.Timeout {
		b.state = StateHalfOpen
		b.probes = 0
	}
	return b.state
}

// allow decides whether a call may proceed, claiming a probe slot in
// half-open state.
func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.tick() {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.probes >= b.opts.HalfOpenMax {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

// record feeds one call outcome back into the state machine.
func (b *Breaker) record(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !failed {
		if b.state == StateHalfOpen {
			b.state = StateClosed
		}
		b.failures = 0
		return
	}

	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.opts.FailThreshold {
		b.state = StateOpen
		b.openedAt = b.now()
		b.failures = 0
		b.probes = 0
	}
}

// Call runs f through the breaker, returning ErrCircuitOpen without
// invoking it when the circuit is open.
func (b *Breaker) Call(ctx context.Context, f func(context.Context) error) error {
	if err := b.allow(); err != nil {
		return err
	}
	err := f(ctx)
	b.record(err != nil)
	return err
}

// CallResult is Call for fn.Result-returning functions. It is a free
// function because Go methods cannot introduce type parameters.
func CallResult[T any](b *Breaker, ctx context.Context, f func(context.Context) fn.Result[T]) fn.Result[T] {
	if err := b.allow(); err != nil {
		return fn.Err[T](err)
	}
	r := f(ctx)
	b.record(r.IsErr())
	return r
}

// BreakerStage guards an fn.Stage with the breaker.
func BreakerStage[In, Out any](b *Breaker, stage fn.Stage[In, Out]) fn.Stage[In, Out] {
	return func(ctx context.Context, in In) fn.Result[Out] {
		return CallResult(b, ctx, func(ctx context.Context) fn.Result[Out] {
			return stage(ctx, in)
		})
	}
}
