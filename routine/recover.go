package routine

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

const stackDepth = 32

// Recovered holds a value recovered from a panic together with the call
// stack captured at the recovery point.
type Recovered struct {
	Value   interface{}
	Callers []uintptr
}

func newRecovered(skip int, value interface{}) *Recovered {
	var callers [stackDepth]uintptr
	n := runtime.Callers(skip+1, callers[:])
	return &Recovered{
		Value:   value,
		Callers: callers[:n],
	}
}

// AsError converts the recovered panic into an error. It returns nil if r is
// nil.
func (r *Recovered) AsError() error {
	if r == nil {
		return nil
	}
	return &PanicError{r}
}

// PanicError is the error form of a recovered panic.
type PanicError struct {
	*Recovered
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StackTrace returns the stack at the panic site in the format used by
// github.com/pkg/errors, so %+v formatting prints frames.
func (e *PanicError) StackTrace() errors.StackTrace {
	if e == nil {
		return nil
	}
	frames := make([]errors.Frame, len(e.Callers))
	for i, pc := range e.Callers {
		frames[i] = errors.Frame(pc)
	}
	return frames
}

// Format implements fmt.Formatter: %+v appends the panic-site stack trace.
func (e *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s", e.Error())
			e.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		fmt.Fprintf(s, "%s", e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
