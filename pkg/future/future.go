// Package future provides pending computations: the values the
// asynchronous assertion checks return, and the stock promise-like
// subject those checks accept.
//
// A Future settles exactly once. Callers must Await (or Wait on) every
// future an asynchronous check returns; a future nobody awaits reports
// nothing, and the engine cannot detect that.
package future

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Future is the eventual result of a computation.
type Future[T any] struct {
	done     chan struct{}
	value    T
	err      error
	panicVal any
	panicked bool
}

// Waiter is anything that can be waited on for an error.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Go runs fn in a new goroutine and returns its future. A panic in fn
// is re-raised in every goroutine that awaits the future.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.panicVal = r
				f.panicked = true
			}
		}()
		f.value, f.err = fn()
	}()
	return f
}

// Resolved returns a future already settled with v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}

	if f.panicked {
		panic(f.panicVal)
	}
	return f.value, f.err
}

// Wait is Await without the value.
func (f *Future[T]) Wait(ctx context.Context) error {
	_, err := f.Await(ctx)
	return err
}

// AwaitAll waits for every waiter concurrently and returns the first
// error any of them settled with. The context handed to the waiters
// is canceled as soon as one fails.
func AwaitAll(ctx context.Context, waiters ...Waiter) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range waiters {
		w := w // per-iteration copy for Go < 1.22 loop semantics
		g.Go(func() error {
			return w.Wait(gctx)
		})
	}
	return g.Wait()
}
