// Package linmap remaps numbers from one range into another.
//
// The mapping is linear with floor division, clamped on the low side only:
// inputs below the source minimum map to the destination minimum, inputs
// above the source maximum extrapolate past the destination maximum.
package linmap

import (
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"linmap-go/errcode"
	"linmap-go/x/mathx"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map maps x from [inMin, inMax] to [outMin, outMax]:
//
//	x <  inMin: outMin
//	x >= inMin: floor((x-inMin)*(outMax-outMin)/(inMax-inMin)) + outMin
//
// Integer arguments are evaluated exactly, so narrow types never overflow in
// the intermediate product; a result that does not fit T is reported as
// errcode.Overflow. A zero-width input range is errcode.InvalidRange.
func Map[T Number](x, inMin, inMax, outMin, outMax T) (T, error) {
	if inMax == inMin {
		return 0, errcode.New(errcode.InvalidRange, "linmap.Map",
			fmt.Sprintf("in_min == in_max (%v)", inMin))
	}
	// Clamping x up to inMin yields outMin below.
	x = mathx.ClampBelow(x, inMin)
	if !isInteger[T]() {
		q := math.Floor(float64(x-inMin) * float64(outMax-outMin) / float64(inMax-inMin))
		return T(q + float64(outMin)), nil
	}
	if small(x) && small(inMin) && small(inMax) && small(outMin) && small(outMax) {
		q := mathx.FloorDiv((int64(x)-int64(inMin))*(int64(outMax)-int64(outMin)),
			int64(inMax)-int64(inMin)) + int64(outMin)
		v := T(q)
		if int64(v) != q || (q < 0 && !isSigned[T]()) {
			return 0, overflow(x, q, v)
		}
		return v, nil
	}
	num := new(big.Int).Sub(toBig(x), toBig(inMin))
	num.Mul(num, new(big.Int).Sub(toBig(outMax), toBig(outMin)))
	den := new(big.Int).Sub(toBig(inMax), toBig(inMin))
	q := floorQuo(num, den)
	q.Add(q, toBig(outMin))
	v, ok := fromBig[T](q)
	if !ok {
		return 0, overflow(x, q, v)
	}
	return v, nil
}

func overflow[T Number](x T, q any, v T) error {
	return errcode.New(errcode.Overflow, "linmap.Map",
		fmt.Sprintf("x=%v maps to %v, outside %T", x, q, v))
}

// smallLimit bounds operands of the int64 path: differences stay below 2^31
// and their product below 2^62.
const smallLimit = 1 << 30

func small[T Number](v T) bool {
	if isSigned[T]() {
		i := int64(v)
		return i >= -smallLimit && i <= smallLimit
	}
	return uint64(v) <= smallLimit
}

// floorQuo divides rounding toward negative infinity. big.Int.Div is
// Euclidean, which differs for negative divisors.
func floorQuo(num, den *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (den.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

func isInteger[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

func toBig[T Number](v T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func fromBig[T Number](b *big.Int) (T, bool) {
	if isSigned[T]() {
		if !b.IsInt64() {
			return 0, false
		}
		i := b.Int64()
		v := T(i)
		return v, int64(v) == i
	}
	if !b.IsUint64() {
		return 0, false
	}
	u := b.Uint64()
	v := T(u)
	return v, uint64(v) == u
}
