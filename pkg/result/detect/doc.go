// Package detect answers capability questions about types: can two types be
// compared for equality, can one convert to the other, do they unify at a
// common type. Generic code gates these capabilities statically with
// constraints (see result.Contains); detect covers the dynamic case, where the
// types are only known as reflect.Type or interface values.
//
// Probing never fails the caller: an operation the type does not support is
// reported as "not detected" rather than propagating a panic.
package detect
