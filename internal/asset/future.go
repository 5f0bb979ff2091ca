package asset

import (
	"context"
	"sync"
)

// Status is the lifecycle state of an asynchronous load.
type Status int

const (
	StatusPending Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Future holds the eventual result of a load. It resolves exactly once.
type Future[T any] struct {
	mu     sync.Mutex
	status Status
	value  T
	err    error
	done   chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future that is already loaded with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.resolve(v, nil)
	return f
}

// Failed returns a future that has already failed with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.resolve(zero, err)
	return f
}

func (f *Future[T]) resolve(v T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != StatusPending {
		return
	}
	if err != nil {
		f.status = StatusFailed
		f.err = err
	} else {
		f.status = StatusLoaded
		f.value = v
	}
	close(f.done)
}

// Status returns the current state.
func (f *Future[T]) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Value returns the loaded value and true once the future has loaded.
func (f *Future[T]) Value() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.status == StatusLoaded
}

// Err returns the failure, or nil while pending or after a successful load.
func (f *Future[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Done is closed when the future leaves the pending state.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future resolves or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
