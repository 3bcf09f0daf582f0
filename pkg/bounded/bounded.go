// Package bounded runs an operation under a hard deadline.
package bounded

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDeadlineExceeded is returned when the operation did not finish in time.
var ErrDeadlineExceeded = errors.New("bounded: deadline exceeded")

// PanicError is returned when fn panicked. Value is what it panicked with.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("bounded: operation panicked: %v", e.Value)
}

// Run calls fn with a context that expires after timeout and waits for the
// first of: fn returning, the deadline, or ctx being cancelled.
//
// If the deadline fires first, Run returns ErrDeadlineExceeded without
// waiting for fn. fn is expected to honor its context; a fn that ignores it
// keeps running in the background until it returns on its own.
// If ctx is cancelled first, ctx.Err() is returned. A panic in fn is
// returned as *PanicError.
func Run[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if timeout <= 0 {
		return zero, fmt.Errorf("bounded: invalid timeout %s", timeout)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: &PanicError{Value: p}}
			}
		}()
		v, err := fn(opCtx)
		done <- result{val: v, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && ctx.Err() == nil && errors.Is(opCtx.Err(), context.DeadlineExceeded) {
			return r.val, fmt.Errorf("%w: %w", ErrDeadlineExceeded, r.err)
		}
		return r.val, r.err
	case <-opCtx.Done():
		// fn may have finished in the same instant.
		select {
		case r := <-done:
			if r.err == nil {
				return r.val, nil
			}
		default:
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, ErrDeadlineExceeded
	}
}
