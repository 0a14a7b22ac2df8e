package future

import "errors"

// Errors reported when the promise-future protocol is violated. They are
// returned synchronously at the offending call site and are never raised
// as panics.
var (
	// ErrPromiseAlreadySatisfied is returned by Promise.SetValue and
	// Promise.SetError when a result has already been published into the
	// shared state.
	ErrPromiseAlreadySatisfied = errors.New("promise already satisfied")

	// ErrFutureAlreadyRetrieved is returned by Promise.Future on the second
	// and subsequent calls. At most one Future may be bound to a Promise.
	ErrFutureAlreadyRetrieved = errors.New("future already retrieved")

	// ErrBrokenPromise is the error a Future observes when its Promise was
	// closed before publishing a result.
	ErrBrokenPromise = errors.New("broken promise")

	// ErrNoState is returned by Future.Get once the result has already been
	// taken, or when the Future was never bound to a Promise.
	ErrNoState = errors.New("future has no shared state")
)
