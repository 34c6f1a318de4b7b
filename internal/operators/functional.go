package operators

import (
	"fmt"
	"iter"
)

// Map applies fn to every element of xs and returns the results in a new slice
// of the same length and order.
func Map[T, U any](fn func(T) U, xs []T) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// MapSeq applies fn to every value yielded by seq and materializes the results.
// seq is ranged over exactly once, so single-use iterators are safe.
func MapSeq[T, U any](fn func(T) U, seq iter.Seq[T]) []U {
	out := []U{}
	for x := range seq {
		out = append(out, fn(x))
	}
	return out
}

// TryMap is Map for functions that can fail. It stops at the first error and
// returns it annotated with the element index.
func TryMap[T, U any](fn func(T) (U, error), xs []T) ([]U, error) {
	out := make([]U, len(xs))
	for i, x := range xs {
		y, err := fn(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = y
	}
	return out, nil
}

// ZipWith applies fn to elements of xs and ys paired by position.
// The result has length min(len(xs), len(ys)); trailing elements of the
// longer slice are ignored.
func ZipWith[A, B, C any](fn func(A, B) C, xs []A, ys []B) []C {
	n := min(len(xs), len(ys))
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = fn(xs[i], ys[i])
	}
	return out
}

// Reduce folds xs from the left: acc = fn(acc, x) for each x in order,
// starting from start. An empty xs returns start.
func Reduce[T, A any](fn func(A, T) A, xs []T, start A) A {
	acc := start
	for _, x := range xs {
		acc = fn(acc, x)
	}
	return acc
}

// NegList negates every element of xs.
func NegList[T Float](xs []T) []T {
	return Map(Neg[T], xs)
}

// Sum returns the sum of xs, 0 for an empty slice.
func Sum[T Float](xs []T) T {
	return Reduce(Add[T], xs, 0)
}

// Prod returns the product of xs, 1 for an empty slice.
func Prod[T Float](xs []T) T {
	return Reduce(Mul[T], xs, 1)
}
