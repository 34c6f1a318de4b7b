// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operators

// Long-form names kept for callers written against the descriptive API.
// Each forwards to the short-named operator.

// Identity is ID.
func Identity[T Float](a T) T { return ID(a) }

// Multiply is Mul.
func Multiply[T Float](a, b T) T { return Mul(a, b) }

// Negate is Neg.
func Negate[T Float](a T) T { return Neg(a) }

// LessThan is Lt.
func LessThan[T Float](a, b T) bool { return Lt(a, b) }

// Equal is Eq.
func Equal[T Float](a, b T) bool { return Eq(a, b) }

// Maximum is Max.
func Maximum[T Float](a, b T) T { return Max(a, b) }

// NaturalLog is Log.
func NaturalLog[T Float](a T) T { return Log(a) }

// Exponential is Exp.
func Exponential[T Float](a T) T { return Exp(a) }

// Inverse is Inv.
func Inverse[T Float](a T) T { return Inv(a) }

// LogBackward is LogBack.
func LogBackward[T Float](a, d T) T { return LogBack(a, d) }

// InverseBackward is InvBack.
func InverseBackward[T Float](a, d T) T { return InvBack(a, d) }

// ReLUBackward is ReLUBack.
func ReLUBackward[T Float](a, d T) T { return ReLUBack(a, d) }

// NegateList is NegList.
func NegateList[T Float](xs []T) []T { return NegList(xs) }

// Product is Prod.
func Product[T Float](xs []T) T { return Prod(xs) }
