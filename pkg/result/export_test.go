package result

import "io"

// swapFatalHooks redirects the fatal diagnostic stream and the exit function
// for the duration of a test, returning a restore func. Tests using it must
// not run in parallel.
func swapFatalHooks(w io.Writer, exitFn func(int)) (restore func()) {
	prevOut, prevExit := diagOut, exit
	diagOut, exit = w, exitFn
	return func() {
		diagOut, exit = prevOut, prevExit
	}
}
