package chain

import (
	"github.com/ib-77/okres/pkg/result"
)

type Chain[T any] struct {
	res result.Result[T, error]
}

func Start[T any](r result.Result[T, error]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(result.Ok[T, error](v))
}

func (c Chain[T]) Result() result.Result[T, error] {
	return c.res
}

// Then composes functions that already return a Result
func (c Chain[T]) Then(onOk func(t T) result.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: onOk(c.res.Unwrap())}
}

// Try composes functions that return (T, error) - like repo calls
func (c Chain[T]) Try(try func(t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, err := try(c.res.Unwrap())
	if err != nil {
		return Chain[T]{res: result.Err[T](err)}
	}
	return Chain[T]{res: result.Ok[T, error](v)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: result.Ok[T, error](onOk(c.res.Unwrap()))}
}

// MapErr transforms the error, leaving a successful value unchanged
func (c Chain[T]) MapErr(onErr func(err error) error) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return Chain[T]{res: result.Err[T](onErr(c.res.UnwrapErr()))}
}

// OrElse recovers from an error with a fallback Result
func (c Chain[T]) OrElse(onErr func(err error) result.Result[T, error]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return Chain[T]{res: onErr(c.res.UnwrapErr())}
}

// RepeatUntil re-applies onOk until the predicate is satisfied or a step fails
func (c Chain[T]) RepeatUntil(onOk func(t T) result.Result[T, error],
	until func(t T) bool) Chain[T] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsErr() || until(c.res.Unwrap()) {
			return c
		}
	}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.UnwrapErr())
		}
		return c
	}

	if onOk != nil {
		onOk(c.res.Unwrap())
	}
	return c
}

func (c Chain[T]) UnwrapOr(fallback T) T {
	return c.res.UnwrapOr(fallback)
}

// Finally collapses the chain to a final value
func Finally[T, Out any](c Chain[T], onOk func(T) Out, onErr func(error) Out) Out {
	return result.MapOrElse(c.Result(), onErr, onOk)
}
