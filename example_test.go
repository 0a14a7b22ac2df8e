package future_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/saltfishpr/future"
)

// ExampleNewPromise demonstrates publishing a value from another goroutine.
func ExampleNewPromise() {
	p := future.NewPromise[string]()
	f, _ := p.Future()

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.SetValue("promise result")
	}()

	result, _ := f.Get()
	fmt.Println(result)
	// Output: promise result
}

// ExamplePromise_SetValue demonstrates that only the first publication wins.
func ExamplePromise_SetValue() {
	p := future.NewPromise[int]()
	f, _ := p.Future()

	fmt.Println("first:", p.SetValue(42))
	fmt.Println("second:", p.SetValue(100))

	result, _ := f.Get()
	fmt.Println("result:", result)
	// Output: first: <nil>
	// second: promise already satisfied
	// result: 42
}

// ExamplePromise_SetError demonstrates error propagation to the Future.
func ExamplePromise_SetError() {
	p := future.NewPromise[string]()
	f, _ := p.Future()

	p.SetError(errors.New("boom"))

	_, err := f.Get()
	fmt.Println(err)
	// Output: boom
}

// ExamplePromise_Close demonstrates the broken-promise error for an
// abandoned producer.
func ExamplePromise_Close() {
	p := future.NewPromise[int]()
	f, _ := p.Future()

	p.Close()

	_, err := f.Get()
	fmt.Println(errors.Is(err, future.ErrBrokenPromise))
	// Output: true
}

// ExampleFuture_WaitFor demonstrates a bounded wait.
func ExampleFuture_WaitFor() {
	p := future.NewPromise[int]()
	f, _ := p.Future()

	fmt.Println("before:", f.WaitFor(0) == future.WaitTimeout)
	p.SetValue(42)
	fmt.Println("after:", f.WaitFor(0) == future.WaitReady)
	// Output: before: true
	// after: true
}

// ExampleGo demonstrates running a producer in its own goroutine.
func ExampleGo() {
	f := future.Go(func() (string, error) {
		return "hello", nil
	})

	result, err := f.Get()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: hello
}
