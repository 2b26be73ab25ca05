package detect

import "reflect"

// NotFound is the sentinel type reported by Probe when the probed expression
// cannot produce a type.
type NotFound struct{}

// NotFoundType is the reflect.Type of the NotFound sentinel.
var NotFoundType = reflect.TypeOf(NotFound{})

// Probe evaluates fn, reporting its result type and true on success. A panic
// inside fn (reflect and interface comparison panic on unsupported
// operations) or a nil result is absorbed and reported as (NotFoundType,
// false); probing never propagates a failure to the caller.
func Probe(fn func() reflect.Type) (t reflect.Type, detected bool) {
	defer func() {
		if recover() != nil {
			t, detected = NotFoundType, false
		}
	}()
	t = fn()
	if t == nil {
		return NotFoundType, false
	}
	return t, true
}

// Detected reports whether fn completes without panicking.
func Detected(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	fn()
	return true
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func zeroOf(t reflect.Type) reflect.Value {
	return reflect.New(t).Elem()
}
