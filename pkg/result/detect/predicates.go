package detect

import "reflect"

// Same reports whether T and U are the identical type.
func Same[T, U any]() bool {
	return SameType(typeOf[T](), typeOf[U]())
}

func SameType(t, u reflect.Type) bool {
	return t == u
}

// ConvertibleTo reports whether a From value converts to To both implicitly
// (assignment) and explicitly (conversion expression).
func ConvertibleTo[From, To any]() bool {
	return ConvertibleToType(typeOf[From](), typeOf[To]())
}

func ConvertibleToType(from, to reflect.Type) bool {
	return from.AssignableTo(to) && from.ConvertibleTo(to)
}

// CommonType reports the type at which t and u unify: the type itself when
// they are identical, otherwise whichever of the two the other converts to.
// The answer is independent of argument order; when both directions convert
// (or neither does) there is no unambiguous common type and NotFoundType is
// reported.
func CommonType(t, u reflect.Type) (reflect.Type, bool) {
	if t == u {
		return t, true
	}
	tToU := ConvertibleToType(t, u)
	uToT := ConvertibleToType(u, t)
	if tToU == uToT {
		return NotFoundType, false
	}
	if tToU {
		return u, true
	}
	return t, true
}

// CommonWith reports whether T and U share a common type that both convert
// to, consistently in either argument order.
func CommonWith[T, U any]() bool {
	return CommonWithType(typeOf[T](), typeOf[U]())
}

func CommonWithType(t, u reflect.Type) bool {
	c1, ok1 := CommonType(t, u)
	c2, ok2 := CommonType(u, t)
	if !ok1 || !ok2 || c1 != c2 {
		return false
	}
	return ConvertibleToType(t, c1) && ConvertibleToType(u, c1)
}

// WeaklyEqualityComparableWith reports whether values of T and U can appear on
// either side of == and !=. The check is performed by probing an actual
// interface comparison of zero values, so a type whose comparison panics
// (slices, maps, functions) is reported as not comparable.
func WeaklyEqualityComparableWith[T, U any]() bool {
	return WeaklyEqualityComparableWithType(typeOf[T](), typeOf[U]())
}

func WeaklyEqualityComparableWithType(t, u reflect.Type) bool {
	if t != u && !ConvertibleToType(t, u) && !ConvertibleToType(u, t) {
		return false
	}
	// Interface comparison of distinct dynamic types is false without
	// panicking, so cross-probing alone cannot expose a non-comparable
	// operand; each side is probed against itself as well.
	return probeEqual(t, t) && probeEqual(u, u) && probeEqual(t, u) && probeEqual(u, t)
}

func probeEqual(t, u reflect.Type) bool {
	return Detected(func() {
		lhs, rhs := zeroOf(t).Interface(), zeroOf(u).Interface()
		_ = lhs == rhs
		_ = lhs != rhs
	})
}

// EqualityComparable reports whether T supports == with itself.
func EqualityComparable[T any]() bool {
	return EqualityComparableType(typeOf[T]())
}

func EqualityComparableType(t reflect.Type) bool {
	return probeEqual(t, t)
}

// EqualityComparableWith reports whether T and U are each self-comparable,
// cross-comparable, share a common type, and that common type is itself
// comparable.
func EqualityComparableWith[T, U any]() bool {
	return EqualityComparableWithType(typeOf[T](), typeOf[U]())
}

func EqualityComparableWithType(t, u reflect.Type) bool {
	if !EqualityComparableType(t) || !EqualityComparableType(u) {
		return false
	}
	if !WeaklyEqualityComparableWithType(t, u) {
		return false
	}
	common, ok := CommonType(t, u)
	if !ok || !CommonWithType(t, u) {
		return false
	}
	return EqualityComparableType(common)
}
