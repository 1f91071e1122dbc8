package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tunexa/audiodb/pkg/fn"
)

func TestLimiterAllowBurst(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 1, Burst: 2})
	if !l.Allow() || !l.Allow() {
		t.Fatal("burst tokens should be available")
	}
	if l.Allow() {
		t.Fatal("bucket should be empty")
	}
}

func TestLimiterRefill(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 100, Burst: 1})
	if !l.Allow() {
		t.Fatal("first token should be available")
	}
	if l.Allow() {
		t.Fatal("bucket should be empty")
	}
	// 100 tokens/sec, so a token is back within ~10ms.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if l.Allow() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("token never refilled")
}

func TestLimiterDefaultBurst(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 1})
	if !l.Allow() {
		t.Fatal("default burst should allow one call")
	}
	if l.Allow() {
		t.Fatal("second call should be limited")
	}
}

func TestLimiterCall(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 1, Burst: 1})
	called := false
	err := l.Call(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatal("first call should pass")
	}
	err = l.Call(context.Background(), func(context.Context) error { return nil })
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestLimiterCallPassesThroughFuncError(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 1, Burst: 1})
	boom := errors.New("boom")
	err := l.Call(context.Background(), func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestLimiterCallWait(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 200, Burst: 1})
	l.Allow() // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	called := false
	err := l.CallWait(ctx, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("CallWait should succeed after refill, err=%v", err)
	}
}

func TestLimiterCallWaitCancelled(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 0.01, Burst: 1})
	l.Allow() // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.CallWait(ctx, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected context error")
	}
}

func TestLimiterStage(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 1, Burst: 1})
	stage := LimiterStage(l, fn.MapStage(func(v int) int { return v * 2 }))

	r := stage(context.Background(), 21)
	if r.Must() != 42 {
		t.Fatal("stage should pass through")
	}
	r = stage(context.Background(), 1)
	_, err := r.Unwrap()
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestLimiterStageWait(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 200, Burst: 1})
	stage := LimiterStageWait(l, fn.MapStage(func(v int) int { return v + 1 }))

	if stage(context.Background(), 1).Must() != 2 {
		t.Fatal("first call should pass")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if stage(ctx, 2).Must() != 3 {
		t.Fatal("second call should pass after waiting")
	}
}

func TestLimiterStageWaitCancelled(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 0.01, Burst: 1})
	l.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	stage := LimiterStageWait(l, fn.MapStage(func(v int) int { return v }))
	if stage(ctx, 1).IsOk() {
		t.Fatal("expected error when wait exceeds deadline")
	}
}
