// Package routine provides panic-safe execution helpers for producer
// goroutines. Try runs a function and captures a panic together with the
// call stack at the panic site; the captured panic converts into an error
// that can be published into a Promise instead of crashing the process.
package routine
