package operators

// BackwardFn computes a local derivative at a given the upstream gradient d.
type BackwardFn[T Float] func(a, d T) T

// Chain applies the chain rule to back: the returned function computes
// back(a, d) * d.
//
// LogBack, InvBack and ReLUBack ignore d and return the bare local
// derivative; Chain turns them into gradient propagators. The +Inf returned
// at a == 0 propagates as ±Inf, or NaN when d == 0.
//
// Example:
//
//	grad := operators.Chain(operators.LogBack[float64])
//	grad(2, 3) // 1.5
func Chain[T Float](back BackwardFn[T]) BackwardFn[T] {
	return func(a, d T) T {
		return back(a, d) * d
	}
}

// ChainedLogBack returns d/a, or +Inf·d when a == 0.
func ChainedLogBack[T Float](a, d T) T {
	return Chain[T](LogBack[T])(a, d)
}

// ChainedInvBack returns -d/a², or +Inf·d when a == 0.
func ChainedInvBack[T Float](a, d T) T {
	return Chain[T](InvBack[T])(a, d)
}

// ChainedReLUBack returns d if a > 0, otherwise 0.
func ChainedReLUBack[T Float](a, d T) T {
	return Chain[T](ReLUBack[T])(a, d)
}

// BackwardList evaluates back at every (xs[i], ds[i]) pair.
func BackwardList[T Float](back BackwardFn[T], xs, ds []T) []T {
	return ZipWith(back, xs, ds)
}

// ChainList evaluates the chain-ruled gradient back(xs[i], ds[i]) * ds[i]
// for every pair, truncating to the shorter slice.
func ChainList[T Float](back BackwardFn[T], xs, ds []T) []T {
	local := BackwardList(back, xs, ds)
	return MulLists(local, ds[:len(local)])
}
