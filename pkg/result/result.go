package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/okres/pkg/result/option"
)

// Unit is the zero-payload success marker, the payload type of a Result that
// succeeds without producing data. Unit must never be used as an error type E:
// a failure always carries information.
type Unit struct{}

// Result holds exactly one of a success value T or an error value E.
//
// The discriminant is stored inverted so that the zero Result is the Ok state
// holding a zero T, matching default construction. Neither T nor E should be a
// pointer or reference-like type that aliases external state; the container
// owns its payload by value.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isErr     bool
}

// Ok returns a Result in the successful state holding value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OkUnit returns a successful Result that carries no data.
func OkUnit[E any]() Result[Unit, E] {
	return Ok[Unit, E](Unit{})
}

// Err returns a Result in the failed state holding value. A failure must
// always carry information, so Unit is not allowed as an error type.
func Err[T, E any](value E) Result[T, E] {
	if _, isUnit := any(value).(Unit); isUnit {
		panic("result: Unit is not allowed as an error type")
	}
	return Result[T, E]{
		err:       value,
		isErr:     true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Ok projects the Result into an option that is present iff the Result is Ok.
func (r Result[T, E]) Ok() option.T[T] {
	if r.isErr {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// Err projects the Result into an option that is present iff the Result is Err.
func (r Result[T, E]) Err() option.T[E] {
	if !r.isErr {
		return option.None[E]()
	}
	return option.Some(r.err)
}

// CreatedAt reports when the Result was constructed (UTC). Zero for a
// zero-value Result.
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Id is the provenance id assigned at construction. Combinators assign a fresh
// id to every Result they produce.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
