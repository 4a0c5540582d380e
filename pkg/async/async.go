package async

import (
	"context"
	"errors"
)

// Future represents the result of an asynchronous computation. A Future may
// be awaited any number of times from any number of goroutines.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// AwaitContext waits for completion or for ctx to be done, whichever comes
// first. Giving up on ctx does not stop the computation; a later call still
// observes its outcome.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for every future and returns their results in order. Unlike
// a fail-fast wait, every future is settled: errs[i] holds the error of
// futures[i], and err joins all of them. If ctx is done first, the futures not
// yet complete report ctx.Err().
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) (results []U, errs []error, err error) {
	results = make([]U, len(futures))
	errs = make([]error, len(futures))

	for i, future := range futures {
		results[i], errs[i] = future.AwaitContext(ctx)
	}

	return results, errs, errors.Join(errs...)
}
