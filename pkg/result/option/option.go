package option

// T holds zero or one value of type V. The zero T is absent.
type T[V any] struct {
	some  bool
	value V
}

func Some[V any](value V) T[V] {
	return T[V]{some: true, value: value}
}

func None[V any]() T[V] {
	return T[V]{}
}

func (o T[V]) IsSome() bool {
	return o.some
}

func (o T[V]) IsNone() bool {
	return !o.some
}

// Value returns the contained value. It panics when the option is absent.
func (o T[V]) Value() V {
	if !o.some {
		panic("option: no value present")
	}
	return o.value
}

func (o T[V]) Get() (V, bool) {
	return o.value, o.some
}

func (o T[V]) UnwrapOr(fallback V) V {
	if o.some {
		return o.value
	}
	return fallback
}

// Map transforms a present value, leaving an absent option absent.
func Map[V, U any](o T[V], f func(V) U) T[U] {
	if !o.some {
		return T[U]{}
	}
	return Some(f(o.value))
}

// Equal compares two options; two absent options are equal, a present and an
// absent option never are.
func Equal[V comparable](lhs, rhs T[V]) bool {
	if lhs.some != rhs.some {
		return false
	}
	return !lhs.some || lhs.value == rhs.value
}
