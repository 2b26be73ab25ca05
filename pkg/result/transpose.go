package result

import "github.com/ib-77/okres/pkg/result/option"

// Transpose swaps the nesting of "maybe absent" and "maybe failed":
//
//	Ok(Some(v)) -> Some(Ok(v))
//	Ok(None)    -> None
//	Err(e)      -> Some(Err(e))
func Transpose[T, E any](r Result[option.T[T], E]) option.T[Result[T, E]] {
	if r.isErr {
		return option.Some(Err[T](r.err))
	}
	if v, present := r.value.Get(); present {
		return option.Some(Ok[T, E](v))
	}
	return option.None[Result[T, E]]()
}
