// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operators provides the scalar prelude of the Born ML framework.
//
// # Overview
//
// This package contains the building blocks that autodiff and tensor kernels
// are written in terms of:
//   - Scalar operators: ID, Add, Mul, Neg, Lt, Eq, Max, IsClose
//   - Activations and transcendental functions: Sigmoid, ReLU, Log, Exp, Inv
//   - Local derivatives: LogBack, InvBack, ReLUBack
//   - Combinators: Map, MapSeq, TryMap, ZipWith, Reduce
//   - List helpers: NegList, AddLists, MulLists, ScaleList, Sum, Prod
//   - Parallel combinators for large slices: ParallelMap, ParallelZipWith
//   - A name-keyed Registry for runtime lookup
//
// All functions are pure and safe for concurrent use.
//
// # Basic Usage
//
//	import "github.com/born-ml/prelude/operators"
//
//	func main() {
//	    xs := []float64{1, 2, 3}
//	    ys := []float64{4, 5, 6}
//
//	    total := operators.Sum(operators.AddLists(xs, ys)) // 21
//	    probs := operators.Map(operators.Sigmoid[float64], xs)
//	    _ = operators.Reduce(operators.Max[float64], probs, 0)
//	}
//
// # Division by Zero and Domain Errors
//
// Inv, InvBack and LogBack return +Inf when their argument is zero instead
// of failing. Log follows math.Log for non-positive input (-Inf at zero, NaN
// below). CheckedLog reports ErrDomain instead, and TryMap carries such
// errors out of a list computation:
//
//	logs, err := operators.TryMap(operators.CheckedLog[float64], xs)
//	if errors.Is(err, operators.ErrDomain) {
//	    // some element was <= 0
//	}
//
// # Backward Functions
//
// LogBack, InvBack and ReLUBack return the local derivative and ignore their
// second (upstream gradient) argument. Code that needs the chain rule wraps
// them with Chain, or uses the ChainedLogBack, ChainedInvBack and
// ChainedReLUBack shorthands:
//
//	grad := operators.Chain(operators.LogBack[float64])
//	grad(2, 3) // 1.5 == 3 / 2
//
// # Ties in Max
//
// Max(a, b) returns b when a == b. This is observable for signed zeros:
// Max(0, -0) is -0.
package operators
