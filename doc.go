// Package future provides a single-value Promise-Future pair: a write-once
// producer handle and a read-once consumer handle sharing one synchronized
// cell. Inspired by std::promise/std::future and by
// https://github.com/jizhuozhi/go-future.
//
// The producer creates a Promise, hands out its Future, and publishes exactly
// one value or error:
//
//	p := future.NewPromise[int]()
//	f, _ := p.Future()
//	go func() {
//		defer p.Close()
//		p.SetValue(compute())
//	}()
//	val, err := f.Get()
//
// Protocol violations (publishing twice, retrieving the Future twice, taking
// the result twice, abandoning the Promise without publishing) are reported
// as typed sentinel errors at the offending call site; nothing in this
// package panics and no consumer is left blocking forever.
package future
