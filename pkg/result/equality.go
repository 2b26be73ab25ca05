package result

// Equal compares two Results. Results in different states are never equal;
// two Ok Results compare their success values, two Err Results their error
// values. The comparable bounds reject instantiations whose payloads do not
// support ==. Provenance metadata (id, createdAt) does not participate.
func Equal[T, E comparable](lhs, rhs Result[T, E]) bool {
	if lhs.isErr != rhs.isErr {
		return false
	}
	if lhs.isErr {
		return lhs.err == rhs.err
	}
	return lhs.value == rhs.value
}

func NotEqual[T, E comparable](lhs, rhs Result[T, E]) bool {
	return !Equal(lhs, rhs)
}

// Contains reports whether the Result is Ok and its success value equals
// value. False on the Err state; the comparison is never performed then.
func Contains[T comparable, E any](r Result[T, E], value T) bool {
	return !r.isErr && r.value == value
}

// ContainsErr reports whether the Result is Err and its error value equals
// value.
func ContainsErr[T any, E comparable](r Result[T, E], value E) bool {
	return r.isErr && r.err == value
}
