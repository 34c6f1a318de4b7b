package operators

import "math"

// Float is a constraint for the scalar types the operators accept.
type Float interface {
	~float32 | ~float64
}

// CloseTolerance is the absolute tolerance used by IsClose.
const CloseTolerance = 1e-2

// ID returns its argument unchanged.
func ID[T Float](a T) T {
	return a
}

// Add returns a + b.
func Add[T Float](a, b T) T {
	return a + b
}

// Mul returns a * b.
func Mul[T Float](a, b T) T {
	return a * b
}

// Neg returns -a.
func Neg[T Float](a T) T {
	return -a
}

// Lt reports whether a < b.
func Lt[T Float](a, b T) bool {
	return a < b
}

// Eq reports whether a == b. No tolerance is applied.
func Eq[T Float](a, b T) bool {
	return a == b
}

// Max returns a if a > b, otherwise b.
//
// On a tie the second argument is returned, so Max(0, -0) yields -0.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// IsClose reports whether |a - b| < CloseTolerance.
//
// The tolerance is absolute and does not scale with the magnitude of the inputs.
func IsClose[T Float](a, b T) bool {
	return math.Abs(float64(a-b)) < CloseTolerance
}

// Sigmoid computes 1 / (1 + exp(-a)).
//
// Negative inputs are evaluated as exp(a) / (1 + exp(a)) so that exp never
// overflows for large |a|.
func Sigmoid[T Float](a T) T {
	x := float64(a)
	if x >= 0 {
		return T(1.0 / (1.0 + math.Exp(-x)))
	}
	e := math.Exp(x)
	return T(e / (1.0 + e))
}

// ReLU returns Max(0, a).
func ReLU[T Float](a T) T {
	return Max(0, a)
}

// Log returns the natural logarithm of a.
//
// Non-positive input follows math.Log: Log(0) is -Inf and Log(a < 0) is NaN.
// Use CheckedLog to get an error instead.
func Log[T Float](a T) T {
	return T(math.Log(float64(a)))
}

// CheckedLog returns the natural logarithm of a, or a *DomainError wrapping
// ErrDomain when a <= 0 or a is NaN.
func CheckedLog[T Float](a T) (T, error) {
	x := float64(a)
	if !(x > 0) {
		return 0, &DomainError{Op: "log", Value: x}
	}
	return T(math.Log(x)), nil
}

// Exp returns e**a.
func Exp[T Float](a T) T {
	return T(math.Exp(float64(a)))
}

// Inv returns 1/a, or +Inf when a == 0.
func Inv[T Float](a T) T {
	if a != 0 {
		return 1.0 / a
	}
	return T(math.Inf(1))
}

// LogBack returns the local derivative of Log at a: 1/a, or +Inf when a == 0.
//
// The upstream gradient d is not applied; wrap with Chain for d/a.
func LogBack[T Float](a, _ T) T {
	if a != 0 {
		return 1.0 / a
	}
	return T(math.Inf(1))
}

// InvBack returns the local derivative of Inv at a: -1/a², or +Inf when a == 0.
//
// The upstream gradient d is not applied; wrap with Chain for -d/a².
func InvBack[T Float](a, _ T) T {
	if a != 0 {
		return -1.0 / (a * a)
	}
	return T(math.Inf(1))
}

// ReLUBack returns 1 if a > 0, otherwise 0. The upstream gradient is not applied.
func ReLUBack[T Float](a, _ T) T {
	if a > 0 {
		return 1.0
	}
	return 0.0
}
