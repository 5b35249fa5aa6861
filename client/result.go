package client

import (
	"context"
	"errors"
	"fmt"
)

// Result is the outcome of a single fetch: either a decoded value or a
// [NetworkError], never both. The zero Result holds neither; it is not OK
// and its Err is [ErrNoResult].
type Result[T any] struct {
	value T
	err   NetworkError
	ok    bool
}

// ErrNoResult is reported by a Result that was never set.
var ErrNoResult = errors.New("client: no result")

// Success wraps a decoded value.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure wraps err. It panics if err is not one of the declared
// [NetworkError] values.
func Failure[T any](err NetworkError) Result[T] {
	if err <= none || err > ErrCannotDecode {
		panic(fmt.Sprintf("client: failure with undeclared network error %d", int(err)))
	}
	return Result[T]{err: err}
}

// OK reports whether r holds a decoded value.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the decoded value, or the zero T on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the [NetworkError] of a failed result, or nil.
func (r Result[T]) Err() error {
	switch {
	case r.ok:
		return nil
	case r.err == none:
		return ErrNoResult
	default:
		return r.err
	}
}

// Unwrap returns the value and error in Go's usual pair form.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Err()
}

// Future is the handle to an in-flight fetch started with [Fetch].
type Future[T any] struct {
	done   chan struct{}
	res    Result[T]
	cancel context.CancelFunc
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done:   make(chan struct{}),
		cancel: func() {},
	}
}

// complete stores res and releases every waiter. It must run once.
func (f *Future[T]) complete(res Result[T]) {
	f.res = res
	close(f.done)
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Result blocks until the fetch completes and returns its outcome.
func (f *Future[T]) Result() Result[T] {
	<-f.done
	return f.res
}

// Await blocks until the fetch completes or ctx ends. Ending ctx only
// stops the wait; use [Future.Cancel] to abort the call itself.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.res.Unwrap()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel aborts the in-flight call. A cancelled fetch still completes,
// with [ErrCannotGetData] unless it had already finished.
func (f *Future[T]) Cancel() {
	f.cancel()
}
