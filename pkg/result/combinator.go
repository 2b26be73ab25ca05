package result

// Map transforms the success value via f, leaving an Err untouched. The error
// type is unchanged, the success type becomes f's return type. f is never
// invoked on the Err state.
func Map[In, Out, E any](r Result[In, E], f func(In) Out) Result[Out, E] {
	if r.isErr {
		return Err[Out](r.err)
	}
	return Ok[Out, E](f(r.value))
}

// MapErr transforms the error value via f, leaving a success value untouched.
func MapErr[T, In, Out any](r Result[T, In], f func(In) Out) Result[T, Out] {
	if !r.isErr {
		return Ok[T, Out](r.value)
	}
	return Err[T](f(r.err))
}

// MapOr applies f to the success value, or returns fallback when the Result is
// Err. The result is the plain mapped value, not re-wrapped. fallback is
// evaluated eagerly; use MapOrElse for a lazy default.
func MapOr[In, Out, E any](r Result[In, E], fallback Out, f func(In) Out) Out {
	if r.isErr {
		return fallback
	}
	return f(r.value)
}

// MapOrElse applies f to the success value, or fallback to the error value.
func MapOrElse[In, Out, E any](r Result[In, E], fallback func(E) Out, f func(In) Out) Out {
	if r.isErr {
		return fallback(r.err)
	}
	return f(r.value)
}

// And returns other when r is Ok, and r's error re-typed to other's success
// type when r is Err. The left error short-circuits.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return other
}

// AndThen chains a fallible operation: applied to the success value when r is
// Ok, otherwise r's error propagates. The first error encountered wins.
func AndThen[In, Out, E any](r Result[In, E], f func(In) Result[Out, E]) Result[Out, E] {
	if r.isErr {
		return Err[Out](r.err)
	}
	return f(r.value)
}

// Or returns other when r is Err, and r's success re-typed to other's error
// type when r is Ok. The left success short-circuits.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.isErr {
		return other
	}
	return Ok[T, F](r.value)
}

// OrElse chains a recovery operation: applied to the error value when r is
// Err, otherwise r's success propagates.
func OrElse[T, In, Out any](r Result[T, In], f func(In) Result[T, Out]) Result[T, Out] {
	if r.isErr {
		return f(r.err)
	}
	return Ok[T, Out](r.value)
}
