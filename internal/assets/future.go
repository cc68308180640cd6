package assets

import (
	"context"
	"sync"
)

// Dispatcher runs tasks on the goroutine that owns the scene.
type Dispatcher interface {
	Post(task func())
}

// Future is the pending result of an asynchronous load. It resolves exactly
// once, with either a value or an error, and is safe for concurrent readers.
type Future[T any] struct {
	path string
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any](path string) *Future[T] {
	return &Future[T]{path: path, done: make(chan struct{})}
}

// Resolved returns a future that is already complete.
func Resolved[T any](path string, v T, err error) *Future[T] {
	f := newFuture[T](path)
	f.resolve(v, err)
	return f
}

// Pending returns an unresolved future and the function that completes it.
// Calls after the first are ignored.
func Pending[T any](path string) (*Future[T], func(T, error)) {
	f := newFuture[T](path)
	var once sync.Once
	return f, func(v T, err error) {
		once.Do(func() { f.resolve(v, err) })
	}
}

func (f *Future[T]) resolve(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// Path is the resource path the future was created for.
func (f *Future[T]) Path() string {
	return f.path
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the future has resolved.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome without blocking. ok is false while the load
// is still pending.
func (f *Future[T]) Result() (v T, err error, ok bool) {
	if !f.Ready() {
		return v, nil, false
	}
	return f.val, f.err, true
}

// Wait blocks until the future resolves or ctx ends.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then posts fn to d once the future resolves. fn never runs on the decode
// goroutine.
func (f *Future[T]) Then(d Dispatcher, fn func(T, error)) {
	go func() {
		<-f.done
		d.Post(func() { fn(f.val, f.err) })
	}()
}
