// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Try: compose result-returning or (T, error)-returning functions
// - Map/MapErr: transform the success or error value
// - Ensure: trigger side effects without changing the result
// - Finally/UnwrapOr: reduce to a concrete value
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package chain
