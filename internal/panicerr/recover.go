// Package panicerr turns panics and runtime.Goexit calls into errors.
package panicerr

// Recover runs f in a new goroutine, blocking until it finishes, and returns
// its error; any panic or runtime.Goexit within f is recovered into a non-nil
// error instead of crashing the process.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
