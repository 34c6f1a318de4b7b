// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operators_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/prelude/operators"
)

// TestScalarProperties checks the documented algebraic properties through the
// public API.
func TestScalarProperties(t *testing.T) {
	values := []float64{-7.5, -1, -0.1, 0, 0.1, 1, 7.5}

	for _, a := range values {
		assert.Equal(t, a, operators.Neg(operators.Neg(a)))
		assert.GreaterOrEqual(t, operators.ReLU(a), 0.0)

		s := operators.Sigmoid(a)
		assert.True(t, s > 0 && s < 1, "sigmoid(%v) = %v", a, s)

		if a != 0 {
			assert.True(t, operators.IsClose(operators.Mul(a, operators.Inv(a)), 1.0))
		}
		for _, b := range values {
			assert.Equal(t, operators.Add(a, b), operators.Add(b, a))
			assert.Equal(t, operators.Mul(a, b), operators.Mul(b, a))
		}
	}

	assert.Equal(t, 0.5, operators.Sigmoid(0.0))
	assert.True(t, operators.IsClose(1.0, 1.005))
	assert.False(t, operators.IsClose(1.0, 1.02))
	assert.Equal(t, 5.0, operators.Max(3.0, 5.0))
	assert.Equal(t, 5.0, operators.Max(5.0, 3.0))
	assert.Equal(t, 5.0, operators.Max(5.0, 5.0))
}

func TestListExamples(t *testing.T) {
	assert.Equal(t, []float64{5, 7, 9}, operators.AddLists([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, []float64{-1, 2, -3}, operators.NegList([]float64{1, -2, 3}))
	assert.Equal(t, []float64{11, 22},
		operators.ZipWith(operators.Add[float64], []float64{1, 2, 3}, []float64{10, 20}))

	xs := []float64{0.5, -4, 2}
	assert.Equal(t, xs, operators.Map(operators.ID[float64], xs))
	assert.Equal(t, operators.Reduce(operators.Add[float64], xs, 0.0), operators.Sum(xs))
	assert.Equal(t, 0.0, operators.Sum[float64](nil))
	assert.Equal(t, 1.0, operators.Prod[float64](nil))
	assert.Equal(t, []float64{-0.5, 4, -2}, operators.MapSeq(operators.Neg[float64], slices.Values(xs)))
}

func TestAliasesForward(t *testing.T) {
	assert.Equal(t, operators.ID(3.0), operators.Identity(3.0))
	assert.Equal(t, operators.Mul(3.0, 4.0), operators.Multiply(3.0, 4.0))
	assert.Equal(t, operators.Neg(3.0), operators.Negate(3.0))
	assert.Equal(t, operators.Lt(3.0, 4.0), operators.LessThan(3.0, 4.0))
	assert.Equal(t, operators.Eq(3.0, 3.0), operators.Equal(3.0, 3.0))
	assert.Equal(t, operators.Max(3.0, 4.0), operators.Maximum(3.0, 4.0))
	assert.Equal(t, operators.Log(3.0), operators.NaturalLog(3.0))
	assert.Equal(t, operators.Exp(3.0), operators.Exponential(3.0))
	assert.Equal(t, operators.Inv(3.0), operators.Inverse(3.0))
	assert.Equal(t, operators.LogBack(3.0, 1.0), operators.LogBackward(3.0, 1.0))
	assert.Equal(t, operators.InvBack(3.0, 1.0), operators.InverseBackward(3.0, 1.0))
	assert.Equal(t, operators.ReLUBack(3.0, 1.0), operators.ReLUBackward(3.0, 1.0))
	assert.Equal(t, []float64{-1}, operators.NegateList([]float64{1}))
	assert.Equal(t, 6.0, operators.Product([]float64{2, 3}))
}

func TestErrorsAndSentinels(t *testing.T) {
	assert.True(t, math.IsInf(operators.Inv(0.0), 1))
	assert.True(t, math.IsInf(operators.InvBack(0.0, 1.0), 1))
	assert.True(t, math.IsInf(operators.LogBack(0.0, 1.0), 1))

	_, err := operators.TryMap(operators.CheckedLog[float64], []float64{2, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, operators.ErrDomain))

	var de *operators.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 0.0, de.Value)
}

func TestChainRule(t *testing.T) {
	grad := operators.Chain(operators.LogBack[float64])
	assert.Equal(t, 1.5, grad(2, 3))
	assert.Equal(t, []float64{-0.5, -0.125}, operators.ChainList(operators.InvBack[float64], []float64{2, 4}, []float64{2, 2}))
}

func TestParallelMatchesSequential(t *testing.T) {
	xs := make([]float64, 10000)
	ys := make([]float64, 10000)
	for i := range xs {
		xs[i] = float64(i)/100 - 50
		ys[i] = float64(i % 7)
	}
	cfg := operators.ParallelConfig{Enabled: true, NumWorkers: 8, MinChunkSize: 16}

	assert.Equal(t, operators.Map(operators.Sigmoid[float64], xs),
		operators.ParallelMap(operators.Sigmoid[float64], xs, cfg))
	assert.Equal(t, operators.ZipWith(operators.Max[float64], xs, ys),
		operators.ParallelZipWith(operators.Max[float64], xs, ys, cfg))
	assert.NoError(t, operators.DefaultParallelConfig().Validate())
}

func TestRegistry(t *testing.T) {
	r := operators.NewRegistry()
	assert.Equal(t, operators.KindPredicate, r.Kind("is_close"))

	relu, err := r.Unary("relu")
	require.NoError(t, err)
	assert.Equal(t, operators.Map(operators.ReLU[float64], []float64{-1, 2}), operators.Map((func(float64) float64)(relu), []float64{-1, 2}))

	_, err = r.Binary("nope")
	assert.ErrorIs(t, err, operators.ErrUnknownOperator)
}
