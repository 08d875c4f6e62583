package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampBelow raises v to lo when it falls under it. There is no upper bound.
func ClampBelow[T constraints.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}
