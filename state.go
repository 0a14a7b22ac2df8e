package future

import (
	"context"
	"sync/atomic"
	"time"
)

const (
	statePending uint32 = iota
	statePublishing
	stateReady
)

// state is the cell shared by a Promise and its Future. The producer side
// publishes exactly one value or error into it; the consumer side takes the
// payload out exactly once.
//
// The lifecycle is a three-step atomic state machine: pending -> publishing
// -> ready. A publisher claims the cell by CASing pending to publishing,
// writes the payload, flips to ready and closes done. Closing done is the
// wake-all notification; the channel receive in the wait paths gives the
// happens-before edge that makes the payload visible to the consumer.
type state[T any] struct {
	noCopy noCopy

	state    atomic.Uint32
	consumed atomic.Uint32
	done     chan struct{}

	val T
	err error
}

func newState[T any]() *state[T] {
	return &state[T]{done: make(chan struct{})}
}

// publish stores the result and wakes every waiter. Exactly one publisher
// succeeds across any number of racing callers; all others get false without
// touching the cell.
func (s *state[T]) publish(val T, err error) bool {
	if !s.state.CompareAndSwap(statePending, statePublishing) {
		return false
	}
	s.val = val
	s.err = err
	s.state.CompareAndSwap(statePublishing, stateReady)
	close(s.done)
	return true
}

func (s *state[T]) free() bool {
	return s.state.Load() == statePending
}

func (s *state[T]) ready() bool {
	return s.state.Load() == stateReady
}

func (s *state[T]) wait() {
	<-s.done
}

func (s *state[T]) waitFor(d time.Duration) WaitStatus {
	if s.ready() {
		return WaitReady
	}
	if d <= 0 {
		return WaitTimeout
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-s.done:
		return WaitReady
	case <-t.C:
		return WaitTimeout
	}
}

func (s *state[T]) waitContext(ctx context.Context) error {
	if s.ready() {
		return nil
	}
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// take blocks until the result is published, then moves the payload out.
// Only the first call succeeds; later calls fail with ErrNoState because the
// payload is gone.
func (s *state[T]) take() (T, error) {
	<-s.done
	var zero T
	if !s.consumed.CompareAndSwap(0, 1) {
		return zero, ErrNoState
	}
	val, err := s.val, s.err
	s.val = zero
	s.err = nil
	return val, err
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527 for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
