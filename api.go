package future

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Promise The Promise provides a facility to store a value or an error that is
// later acquired asynchronously via the Future created by the Promise. Note
// that the Promise object is meant to be set only once.
//
// Each Promise is associated with a shared state, which contains some state
// information and a result which may be not yet evaluated, evaluated to a
// value (possibly nil) or evaluated to an error.
//
// The Promise is the "push" end of the promise-future communication channel:
// the operation that stores a result in the shared state synchronizes-with
// (as defined in Go's memory model) the successful return from any function
// that is waiting on the shared state (such as Future.Get).
//
// Misuse of a Promise is reported with typed errors rather than panics: a
// second publication fails with ErrPromiseAlreadySatisfied and a second
// Future fails with ErrFutureAlreadyRetrieved.
//
// A Promise must not be copied after first use.
type Promise[T any] struct {
	state     *state[T]
	retrieved atomic.Uint32
}

// NewPromise creates a new Promise with a fresh shared state.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{
		state: newState[T](),
	}
}

// Future returns the one Future bound to the Promise's shared state. The
// second and subsequent calls fail with ErrFutureAlreadyRetrieved.
func (p *Promise[T]) Future() (*Future[T], error) {
	if !p.retrieved.CompareAndSwap(0, 1) {
		return nil, ErrFutureAlreadyRetrieved
	}
	return &Future[T]{state: p.state}, nil
}

// SetValue publishes val into the shared state and wakes all waiters. It
// fails with ErrPromiseAlreadySatisfied if a result was already published,
// leaving the stored result untouched.
func (p *Promise[T]) SetValue(val T) error {
	if !p.state.publish(val, nil) {
		return ErrPromiseAlreadySatisfied
	}
	return nil
}

// SetError publishes err into the shared state and wakes all waiters. The
// Future returns the stored error verbatim from Get. SetError fails with
// ErrPromiseAlreadySatisfied if a result was already published.
func (p *Promise[T]) SetError(err error) error {
	var zero T
	if !p.state.publish(zero, err) {
		return ErrPromiseAlreadySatisfied
	}
	return nil
}

// Close releases the Promise's write side. If no result was published, the
// shared state is completed with ErrBrokenPromise so a pending or later Get
// fails cleanly instead of blocking forever. Close after a successful
// SetValue or SetError is a no-op, and Close may be called multiple times,
// so it is safe to defer unconditionally next to a producer.
func (p *Promise[T]) Close() {
	var zero T
	p.state.publish(zero, errors.WithStack(ErrBrokenPromise))
}

// IsFree reports whether no result has been published yet.
func (p *Promise[T]) IsFree() bool {
	return p.state.free()
}

// WaitStatus is the result of a bounded wait on a Future.
type WaitStatus int

const (
	// WaitReady means the result was published before the wait ended.
	WaitReady WaitStatus = iota
	// WaitTimeout means the wait ended first; the shared state is untouched.
	WaitTimeout
)

// Future The Future provides a mechanism to access the result of an
// asynchronous operation:
//
// 1. An asynchronous operation (Go, CtxGo or a plain Promise) provides a
// Future to the creator of that asynchronous operation.
//
// 2. The creator of the asynchronous operation can then use a variety of
// methods to query, wait for, or extract the result from the Future. These
// methods may block if the asynchronous operation has not yet published a
// result.
//
// 3. When the asynchronous operation is ready to send a result to the
// creator, it does so by modifying the shared state (e.g. Promise.SetValue)
// that is linked to the creator's Future.
//
// Get moves the payload out of the shared state, so it succeeds exactly
// once; Wait, WaitFor, WaitContext and IsReady observe the state without
// consuming it and may be used any number of times.
type Future[T any] struct {
	state *state[T]
}

// Get blocks until the result is published, then takes it out of the shared
// state. If the producer stored an error (including ErrBrokenPromise), that
// error is returned verbatim. The payload can be taken only once: a second
// Get, or Get on the zero Future, fails with ErrNoState.
func (f *Future[T]) Get() (T, error) {
	if f.state == nil {
		var zero T
		return zero, ErrNoState
	}
	return f.state.take()
}

// Wait blocks until the result is published. It does not consume the result
// and may be called any number of times.
func (f *Future[T]) Wait() {
	f.state.wait()
}

// WaitFor blocks until the result is published or d elapses, whichever comes
// first. A zero or negative d reports the current readiness without
// blocking. WaitFor does not consume the result.
func (f *Future[T]) WaitFor(d time.Duration) WaitStatus {
	return f.state.waitFor(d)
}

// WaitContext blocks until the result is published or ctx is done, in which
// case ctx.Err() is returned. Abandoning a wait this way leaves the shared
// state untouched; the producer is not cancelled.
func (f *Future[T]) WaitContext(ctx context.Context) error {
	return f.state.waitContext(ctx)
}

// IsReady reports whether the result has been published. It never blocks.
// IsReady keeps reporting true after the result has been taken by Get.
func (f *Future[T]) IsReady() bool {
	return f.state.ready()
}
