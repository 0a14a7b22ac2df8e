package routine

// Try runs fn and recovers any panic it raises, returning the recovered
// value together with its stack. It returns nil when fn completes normally.
func Try(fn func()) (rec *Recovered) {
	defer func() {
		if r := recover(); r != nil {
			rec = newRecovered(2, r)
		}
	}()
	fn()
	return nil
}

// Go runs fn in a new goroutine. A panic in fn is recovered and handed to
// onPanic instead of crashing the process; a nil onPanic discards it.
func Go(fn func(), onPanic func(*Recovered)) {
	go func() {
		if rec := Try(fn); rec != nil && onPanic != nil {
			onPanic(rec)
		}
	}()
}
