package future

import (
	"context"

	"github.com/saltfishpr/future/routine"
)

// Go runs fn in a new goroutine and returns a Future that is completed with
// its result. A panic in fn is recovered and published as a
// *routine.PanicError carrying the stack of the panic site, so the consumer
// observes an error instead of blocking forever.
//
// Go spawns exactly one goroutine per call; it does not pool or schedule
// work.
func Go[T any](fn func() (T, error)) *Future[T] {
	p := NewPromise[T]()
	f, _ := p.Future()
	go func() {
		defer p.Close()
		if rec := routine.Try(func() {
			val, err := fn()
			if err != nil {
				p.SetError(err)
				return
			}
			p.SetValue(val)
		}); rec != nil {
			p.SetError(rec.AsError())
		}
	}()
	return f
}

// CtxGo is like Go but passes ctx through to fn. The context is for fn's own
// use; this package does not cancel a running producer.
func CtxGo[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	return Go(func() (T, error) {
		return fn(ctx)
	})
}

// Done returns a Future that already holds val.
func Done[T any](val T) *Future[T] {
	p := NewPromise[T]()
	f, _ := p.Future()
	p.SetValue(val)
	return f
}

// Fail returns a Future that already holds err.
func Fail[T any](err error) *Future[T] {
	p := NewPromise[T]()
	f, _ := p.Future()
	p.SetError(err)
	return f
}
