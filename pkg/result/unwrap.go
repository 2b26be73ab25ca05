package result

const (
	unwrapErrMsg   = "Attempting to unwrap an Err Result"
	unwrapErrOkMsg = "Attempting to unwrap_err an Ok Result"
)

// Unwrap returns the success value. If the Result is Err this is a fatal
// programmer error: the diagnostic (including the error value) is written to
// stderr and the process terminates with a failure status. Prefer UnwrapOr,
// UnwrapOrElse or the combinators when the state is not known to be Ok.
func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		reportFatal(unwrapErrMsg, r.err)
	}
	return r.value
}

// UnwrapErr returns the error value, fatally terminating when the Result is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr {
		reportFatal(unwrapErrOkMsg, r.value)
	}
	return r.err
}

// Expect behaves like Unwrap with a caller-supplied diagnostic prefix.
func (r Result[T, E]) Expect(msg string) T {
	if r.isErr {
		reportFatal(msg, r.err)
	}
	return r.value
}

// ExpectErr behaves like UnwrapErr with a caller-supplied diagnostic prefix.
func (r Result[T, E]) ExpectErr(msg string) E {
	if !r.isErr {
		reportFatal(msg, r.value)
	}
	return r.err
}

// UnwrapOr returns the success value, or fallback when the Result is Err.
// The fallback argument is evaluated eagerly at the call site regardless of
// state; use UnwrapOrElse when it is expensive to compute.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isErr {
		return fallback
	}
	return r.value
}

// UnwrapOrDefault returns the success value, or the zero T when the Result is Err.
func (r Result[T, E]) UnwrapOrDefault() T {
	if r.isErr {
		var zero T
		return zero
	}
	return r.value
}

// UnwrapOrElse returns the success value, or the result of applying fallback
// to the error value. The fallback is only invoked on the Err state.
func (r Result[T, E]) UnwrapOrElse(fallback func(E) T) T {
	if r.isErr {
		return fallback(r.err)
	}
	return r.value
}
