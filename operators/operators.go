// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operators

import (
	"iter"

	"github.com/born-ml/prelude/internal/operators"
	"github.com/born-ml/prelude/internal/parallel"
)

// Float is the constraint for scalar element types (float32, float64 and
// named types derived from them).
type Float = operators.Float

// CloseTolerance is the absolute tolerance used by IsClose.
const CloseTolerance = operators.CloseTolerance

// Errors.
var (
	ErrDomain          = operators.ErrDomain
	ErrUnknownOperator = operators.ErrUnknownOperator
	ErrArity           = operators.ErrArity
)

// DomainError reports the operator and argument that fell outside its domain.
type DomainError = operators.DomainError

// Scalar operators.

// ID returns its argument unchanged.
func ID[T Float](a T) T { return operators.ID(a) }

// Add returns a + b.
func Add[T Float](a, b T) T { return operators.Add(a, b) }

// Mul returns a * b.
func Mul[T Float](a, b T) T { return operators.Mul(a, b) }

// Neg returns -a.
func Neg[T Float](a T) T { return operators.Neg(a) }

// Lt reports whether a < b.
func Lt[T Float](a, b T) bool { return operators.Lt(a, b) }

// Eq reports whether a == b exactly.
func Eq[T Float](a, b T) bool { return operators.Eq(a, b) }

// Max returns a if a > b, otherwise b (ties return b).
func Max[T Float](a, b T) T { return operators.Max(a, b) }

// IsClose reports whether |a - b| < CloseTolerance.
func IsClose[T Float](a, b T) bool { return operators.IsClose(a, b) }

// Sigmoid computes 1 / (1 + exp(-a)) without overflow for large |a|.
func Sigmoid[T Float](a T) T { return operators.Sigmoid(a) }

// ReLU returns Max(0, a).
func ReLU[T Float](a T) T { return operators.ReLU(a) }

// Log returns the natural logarithm of a, following math.Log for a <= 0.
func Log[T Float](a T) T { return operators.Log(a) }

// CheckedLog returns the natural logarithm of a, or ErrDomain for a <= 0.
func CheckedLog[T Float](a T) (T, error) { return operators.CheckedLog(a) }

// Exp returns e**a.
func Exp[T Float](a T) T { return operators.Exp(a) }

// Inv returns 1/a, or +Inf when a == 0.
func Inv[T Float](a T) T { return operators.Inv(a) }

// LogBack returns 1/a, or +Inf when a == 0. d is ignored.
func LogBack[T Float](a, d T) T { return operators.LogBack(a, d) }

// InvBack returns -1/a², or +Inf when a == 0. d is ignored.
func InvBack[T Float](a, d T) T { return operators.InvBack(a, d) }

// ReLUBack returns 1 if a > 0, otherwise 0. d is ignored.
func ReLUBack[T Float](a, d T) T { return operators.ReLUBack(a, d) }

// Backward chain.

// BackwardFn computes a local derivative at a given the upstream gradient d.
type BackwardFn[T Float] = operators.BackwardFn[T]

// Chain returns a function computing back(a, d) * d.
func Chain[T Float](back BackwardFn[T]) BackwardFn[T] { return operators.Chain(back) }

// ChainedLogBack returns d/a.
func ChainedLogBack[T Float](a, d T) T { return operators.ChainedLogBack(a, d) }

// ChainedInvBack returns -d/a².
func ChainedInvBack[T Float](a, d T) T { return operators.ChainedInvBack(a, d) }

// ChainedReLUBack returns d if a > 0, otherwise 0.
func ChainedReLUBack[T Float](a, d T) T { return operators.ChainedReLUBack(a, d) }

// BackwardList evaluates back at every (xs[i], ds[i]) pair.
func BackwardList[T Float](back BackwardFn[T], xs, ds []T) []T {
	return operators.BackwardList(back, xs, ds)
}

// ChainList evaluates back(xs[i], ds[i]) * ds[i] for every pair.
func ChainList[T Float](back BackwardFn[T], xs, ds []T) []T {
	return operators.ChainList(back, xs, ds)
}

// Combinators.

// Map applies fn to every element of xs.
func Map[T, U any](fn func(T) U, xs []T) []U { return operators.Map(fn, xs) }

// MapSeq applies fn to every value of a (possibly single-use) sequence.
func MapSeq[T, U any](fn func(T) U, seq iter.Seq[T]) []U { return operators.MapSeq(fn, seq) }

// TryMap applies fn to every element of xs, stopping at the first error.
func TryMap[T, U any](fn func(T) (U, error), xs []T) ([]U, error) {
	return operators.TryMap(fn, xs)
}

// ZipWith applies fn pairwise, truncating to the shorter slice.
func ZipWith[A, B, C any](fn func(A, B) C, xs []A, ys []B) []C {
	return operators.ZipWith(fn, xs, ys)
}

// Reduce left-folds xs with fn starting from start.
func Reduce[T, A any](fn func(A, T) A, xs []T, start A) A {
	return operators.Reduce(fn, xs, start)
}

// List helpers.

// NegList negates every element of xs.
func NegList[T Float](xs []T) []T { return operators.NegList(xs) }

// AddLists adds xs and ys element-wise.
func AddLists[T Float](xs, ys []T) []T { return operators.AddLists(xs, ys) }

// MulLists multiplies xs and ys element-wise.
func MulLists[T Float](xs, ys []T) []T { return operators.MulLists(xs, ys) }

// ScaleList multiplies every element of xs by s.
func ScaleList[T Float](xs []T, s T) []T { return operators.ScaleList(xs, s) }

// Sum returns the sum of xs (0 when empty).
func Sum[T Float](xs []T) T { return operators.Sum(xs) }

// Prod returns the product of xs (1 when empty).
func Prod[T Float](xs []T) T { return operators.Prod(xs) }

// Parallel combinators.

// ParallelConfig controls ParallelMap and ParallelZipWith.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// ParallelMap is Map split across worker goroutines. fn must be safe for
// concurrent use.
func ParallelMap[T, U any](fn func(T) U, xs []T, cfg ParallelConfig) []U {
	return parallel.Map(fn, xs, cfg)
}

// ParallelZipWith is ZipWith split across worker goroutines.
func ParallelZipWith[A, B, C any](fn func(A, B) C, xs []A, ys []B, cfg ParallelConfig) []C {
	return parallel.ZipWith(fn, xs, ys, cfg)
}

// Registry.

// Registry maps operator names to float64 implementations.
type Registry = operators.Registry

// Kind classifies a registered operator by its signature.
type Kind = operators.Kind

// Operator kinds.
const (
	KindUnknown   = operators.KindUnknown
	KindUnary     = operators.KindUnary
	KindBinary    = operators.KindBinary
	KindPredicate = operators.KindPredicate
	KindBackward  = operators.KindBackward
)

// Float64 operator signatures used by Registry.
type (
	UnaryFn     = operators.UnaryFn
	BinaryFn    = operators.BinaryFn
	PredicateFn = operators.PredicateFn
)

// NewRegistry creates a registry with all built-in operators.
func NewRegistry() *Registry { return operators.NewRegistry() }
