package operators

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		kind Kind
	}{
		{"id", KindUnary},
		{"identity", KindUnary},
		{"neg", KindUnary},
		{"negate", KindUnary},
		{"inv", KindUnary},
		{"inverse", KindUnary},
		{"log", KindUnary},
		{"natural_log", KindUnary},
		{"exp", KindUnary},
		{"exponential", KindUnary},
		{"sigmoid", KindUnary},
		{"relu", KindUnary},
		{"add", KindBinary},
		{"mul", KindBinary},
		{"multiply", KindBinary},
		{"max", KindBinary},
		{"maximum", KindBinary},
		{"lt", KindPredicate},
		{"less_than", KindPredicate},
		{"eq", KindPredicate},
		{"equal", KindPredicate},
		{"is_close", KindPredicate},
		{"log_back", KindBackward},
		{"log_backward", KindBackward},
		{"inv_back", KindBackward},
		{"inverse_backward", KindBackward},
		{"relu_back", KindBackward},
		{"relu_backward", KindBackward},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, r.Kind(tt.name), tt.name)
	}
	assert.Len(t, r.SupportedOps(), len(tests))
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	sigmoid, err := r.Unary("sigmoid")
	require.NoError(t, err)
	assert.Equal(t, 0.5, sigmoid(0))

	maximum, err := r.Binary("maximum")
	require.NoError(t, err)
	assert.Equal(t, 5.0, maximum(5, 3))

	lt, err := r.Predicate("less_than")
	require.NoError(t, err)
	assert.True(t, lt(1, 2))

	back, err := r.Backward("inverse_backward")
	require.NoError(t, err)
	assert.Equal(t, -0.25, back(2, 10))
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Unary("tanh")
	assert.ErrorIs(t, err, ErrUnknownOperator)
	assert.Equal(t, KindUnknown, r.Kind("tanh"))

	_, err = r.Unary("add")
	assert.ErrorIs(t, err, ErrArity)
	assert.Contains(t, err.Error(), "binary")

	_, err = r.Backward("relu")
	assert.ErrorIs(t, err, ErrArity)
}

func TestRegisterCustomOp(t *testing.T) {
	r := NewRegistry()

	r.RegisterUnary(func(a float64) float64 { return a * a }, "square")
	square, err := r.Unary("square")
	require.NoError(t, err)
	assert.Equal(t, 9.0, square(3))

	// Re-registering under a different kind replaces the old entry.
	r.RegisterBinary(Add[float64], "square")
	assert.Equal(t, KindBinary, r.Kind("square"))
	_, err = r.Unary("square")
	assert.ErrorIs(t, err, ErrArity)
	assert.Equal(t, 1, countOf(r.SupportedOps(), "square"))
}

func TestSupportedOpsSorted(t *testing.T) {
	ops := NewRegistry().SupportedOps()
	assert.True(t, slices.IsSorted(ops))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unary", KindUnary.String())
	assert.Equal(t, "backward", KindBackward.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func countOf(xs []string, s string) int {
	n := 0
	for _, x := range xs {
		if x == s {
			n++
		}
	}
	return n
}
