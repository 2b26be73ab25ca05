package result

import "testing"

func TestEqual_SameState(t *testing.T) {
	t.Parallel()
	if !Equal(Ok[int, string](2), Ok[int, string](2)) {
		t.Fatalf("two Ok Results with equal values must be equal")
	}
	if Equal(Ok[int, string](2), Ok[int, string](3)) {
		t.Fatalf("two Ok Results with different values must not be equal")
	}
	if !Equal(Err[int]("boom"), Err[int]("boom")) {
		t.Fatalf("two Err Results with equal errors must be equal")
	}
	if Equal(Err[int]("boom"), Err[int]("bang")) {
		t.Fatalf("two Err Results with different errors must not be equal")
	}
}

func TestEqual_DifferentState(t *testing.T) {
	t.Parallel()
	if Equal(Ok[int, string](2), Err[int]("2")) {
		t.Fatalf("Ok and Err must never be equal")
	}
	if !NotEqual(Ok[int, string](2), Err[int]("2")) {
		t.Fatalf("NotEqual must be the negation of Equal")
	}
}

func TestEqual_IgnoresProvenance(t *testing.T) {
	t.Parallel()
	a := Ok[int, string](5)
	b := Ok[int, string](5)
	if a.Id() == b.Id() {
		t.Fatalf("precondition: distinct ids")
	}
	if !Equal(a, b) {
		t.Fatalf("equality must compare payloads only")
	}
}

func TestContains(t *testing.T) {
	t.Parallel()
	if !Contains(Ok[uint32, string](2), 2) {
		t.Fatalf("expected Ok(2) to contain 2")
	}
	if Contains(Ok[uint32, string](3), 2) {
		t.Fatalf("Ok(3) must not contain 2")
	}
	if Contains(Err[uint32]("Some error message"), 2) {
		t.Fatalf("an Err must never contain a success value")
	}
}

func TestContainsErr(t *testing.T) {
	t.Parallel()
	if ContainsErr(Ok[uint32, string](2), "Some error message") {
		t.Fatalf("an Ok must never contain an error value")
	}
	if !ContainsErr(Err[uint32]("Some error message"), "Some error message") {
		t.Fatalf("expected the Err to contain its message")
	}
	if ContainsErr(Err[uint32]("Some other error message"), "Some error message") {
		t.Fatalf("different error values must not match")
	}
}
