// Package result provides Result[T, E], a two-variant container holding either
// a success value of type T or an error value of type E, as a disciplined
// alternative to (T, error) tuples whose error half is easy to ignore.
//
// A Result is created with Ok, Err or OkUnit and then consumed either directly
// (IsOk, Unwrap, UnwrapOr, ...) or through the package-level combinators
// (Map, MapErr, AndThen, OrElse, ...). Combinators are package functions rather
// than methods because Go methods cannot introduce new type parameters.
//
// Unwrap and Expect on a Result in the wrong state are programmer errors, not
// domain failures: they print a diagnostic to stderr and terminate the process.
// Domain failures stay ordinary values and flow through the combinators.
//
// Operations that compare payloads (Equal, Contains, ContainsErr) constrain the
// payload types to comparable, so an instantiation with a non-comparable
// payload is rejected by the compiler instead of misbehaving at run time.
package result
