package option

import "testing"

func TestSome(t *testing.T) {
	t.Parallel()
	o := Some(42)
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("expected a present option")
	}
	if o.Value() != 42 {
		t.Fatalf("expected 42, got %v", o.Value())
	}
	if v, present := o.Get(); !present || v != 42 {
		t.Fatalf("Get must agree with Value, got present=%v, v=%v", present, v)
	}
}

func TestNone(t *testing.T) {
	t.Parallel()
	o := None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("expected an absent option")
	}
	if _, present := o.Get(); present {
		t.Fatalf("Get on an absent option must report false")
	}
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()
	var o T[string]
	if o.IsSome() {
		t.Fatalf("the zero option must be absent")
	}
}

func TestValue_PanicsWhenAbsent(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("Value on an absent option must panic")
		}
	}()
	None[int]().Value()
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	if got := Some(7).UnwrapOr(1); got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
	if got := None[int]().UnwrapOr(1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	double := func(v int) int { return v * 2 }

	if got := Map(Some(21), double); !got.IsSome() || got.Value() != 42 {
		t.Fatalf("expected Some(42)")
	}
	if got := Map(None[int](), double); got.IsSome() {
		t.Fatalf("mapping an absent option must stay absent")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	if !Equal(Some(1), Some(1)) {
		t.Fatalf("equal present values must compare equal")
	}
	if Equal(Some(1), Some(2)) {
		t.Fatalf("different present values must not compare equal")
	}
	if Equal(Some(1), None[int]()) {
		t.Fatalf("present and absent must not compare equal")
	}
	if !Equal(None[int](), None[int]()) {
		t.Fatalf("two absent options must compare equal")
	}
}
