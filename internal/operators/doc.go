// Package operators implements the scalar prelude used by Born's autodiff layer.
//
// The package provides:
//   - Scalar operators (Add, Mul, Neg, Sigmoid, ReLU, Log, Exp, Inv, ...)
//   - Local derivatives of Log, Inv and ReLU (LogBack, InvBack, ReLUBack)
//   - Higher-order combinators over slices (Map, ZipWith, Reduce)
//   - List helpers built from the combinators (NegList, AddLists, Sum, Prod)
//   - A name-keyed Registry for resolving operators at runtime
//
// Every function is pure: inputs are never mutated and sequence results are
// freshly allocated. Division by zero is reported through +Inf rather than an
// error. Log follows math.Log on non-positive input (NaN or -Inf); CheckedLog
// returns ErrDomain instead.
package operators
