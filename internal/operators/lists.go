package operators

import "github.com/cwbudde/algo-vecmath"

// AddLists adds xs and ys element-wise, truncating to the shorter slice.
//
// []float64 input is routed through vecmath block kernels; other element
// types (including named float64 types) use ZipWith. Both paths produce the
// same IEEE results.
func AddLists[T Float](xs, ys []T) []T {
	if xf, ok := any(xs).([]float64); ok {
		return any(addFloat64(xf, any(ys).([]float64))).([]T)
	}
	return ZipWith(Add[T], xs, ys)
}

// MulLists multiplies xs and ys element-wise, truncating to the shorter slice.
func MulLists[T Float](xs, ys []T) []T {
	if xf, ok := any(xs).([]float64); ok {
		return any(mulFloat64(xf, any(ys).([]float64))).([]T)
	}
	return ZipWith(Mul[T], xs, ys)
}

// ScaleList multiplies every element of xs by s.
func ScaleList[T Float](xs []T, s T) []T {
	if xf, ok := any(xs).([]float64); ok {
		out := make([]float64, len(xf))
		if len(xf) > 0 {
			vecmath.ScaleBlock(out, xf, float64(s))
		}
		return any(out).([]T)
	}
	return Map(func(x T) T { return Mul(x, s) }, xs)
}

func addFloat64(xs, ys []float64) []float64 {
	n := min(len(xs), len(ys))
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	copy(out, xs[:n])
	vecmath.AddBlockInPlace(out, ys[:n])
	return out
}

func mulFloat64(xs, ys []float64) []float64 {
	n := min(len(xs), len(ys))
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	vecmath.MulBlock(out, xs[:n], ys[:n])
	return out
}
