package fn

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("audiodb/fn")

// Stage is one step of a processing pipeline: it takes an input under a
// context and yields a Result. Stages compose with Then and Pipeline and
// gain behavior through wrappers like RetryStage and TracedStage.
type Stage[In, Out any] func(context.Context, In) Result[Out]

// Then chains second after first, skipping second when first fails.
func Then[A, B, C any](first Stage[A, B], second Stage[B, C]) Stage[A, C] {
	return func(ctx context.Context, a A) Result[C] {
		v, err := first(ctx, a).Unwrap()
		if err != nil {
			return Err[C](err)
		}
		return second(ctx, v)
	}
}

// Pipeline composes any number of same-typed stages into one, stopping at
// the first failure.
func Pipeline[T any](stages ...Stage[T, T]) Stage[T, T] {
	return func(ctx context.Context, t T) Result[T] {
		cur := t
		for _, stage := range stages {
			r := stage(ctx, cur)
			if r.IsErr() {
				return r
			}
			cur = r.val
		}
		return Ok(cur)
	}
}

// MapStage lifts a pure function into a Stage that never fails.
func MapStage[In, Out any](f func(In) Out) Stage[In, Out] {
	return func(_ context.Context, in In) Result[Out] {
		return Ok(f(in))
	}
}

// TapStage runs a side effect against the value and passes it through.
func TapStage[T any](f func(context.Context, T)) Stage[T, T] {
	return func(ctx context.Context, t T) Result[T] {
		f(ctx, t)
		return Ok(t)
	}
}

// BatchStage fans a stage out over a slice with at most workers goroutines.
// The combined result fails with the first per-item error.
func BatchStage[T, U any](workers int, stage Stage[T, U]) Stage[[]T, []U] {
	return func(ctx context.Context, items []T) Result[[]U] {
		return Collect(ParMapResult(items, workers, func(item T) Result[U] {
			return stage(ctx, item)
		}))
	}
}

// TracedStage records the stage as an OpenTelemetry span named name.
// Failures are attached to the span as error status.
func TracedStage[In, Out any](name string, stage Stage[In, Out]) Stage[In, Out] {
	return func(ctx context.Context, in In) Result[Out] {
		ctx, span := tracer.Start(ctx, name)
		defer span.End()

		r := stage(ctx, in)
		if _, err := r.Unwrap(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return r
	}
}
