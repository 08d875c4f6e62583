package mathx

import "golang.org/x/exp/constraints"

// FloorDiv returns floor(a/b), rounding toward negative infinity.
// Go's / truncates toward zero, so the quotient is corrected when the
// operands have opposite signs and the division is inexact.
// b == 0 yields 0.
func FloorDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	q := a / b
	if r := a % b; r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}
