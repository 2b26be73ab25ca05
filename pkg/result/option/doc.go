// Package option provides the minimal "maybe absent" value shape used by the
// result package: Ok/Err projections and Transpose all speak option.T.
//
// - Some/None: create a present or absent value
// - IsSome/IsNone: state queries
// - Value: read the value, panicking when absent
// - Get/UnwrapOr: non-panicking access
package option
