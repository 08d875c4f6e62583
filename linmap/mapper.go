package linmap

import (
	"fmt"
	"iter"

	"linmap-go/errcode"
)

// Range is a closed interval [Min, Max]. Max may be below Min.
type Range[T Number] struct {
	Min T
	Max T
}

// Width is Max - Min; negative for a descending range.
func (r Range[T]) Width() T { return r.Max - r.Min }

// Valid reports whether the range can be mapped from (non-zero width).
func (r Range[T]) Valid() bool { return r.Max != r.Min }

// String formats the range as "[min, max]".
func (r Range[T]) String() string { return fmt.Sprintf("[%v, %v]", r.Min, r.Max) }

// Point is one evaluated input and its mapped value.
type Point[T Number] struct {
	X T
	Y T
}

// Mapper is a pair of ranges validated once for repeated mapping.
type Mapper[T Number] struct {
	In  Range[T]
	Out Range[T]
}

// New returns a Mapper from in to out. The input range must have non-zero width.
func New[T Number](in, out Range[T]) (*Mapper[T], error) {
	if !in.Valid() {
		return nil, errcode.New(errcode.InvalidRange, "linmap.New",
			"input range "+in.String()+" has zero width")
	}
	return &Mapper[T]{In: in, Out: out}, nil
}

// Map maps x with the mapper's ranges. See the package-level Map.
func (m *Mapper[T]) Map(x T) (T, error) {
	return Map(x, m.In.Min, m.In.Max, m.Out.Min, m.Out.Max)
}

// Sweep yields Map for x = 0 .. n-1 in order.
// On failure it yields the error once, with the offending X where it is
// representable, and stops. An x that does not fit T is errcode.Overflow.
func (m *Mapper[T]) Sweep(n int) iter.Seq2[Point[T], error] {
	return func(yield func(Point[T], error) bool) {
		for i := range n {
			x := T(i)
			if int(x) != i {
				yield(Point[T]{}, errcode.New(errcode.Overflow, "linmap.Sweep",
					fmt.Sprintf("x=%d does not fit %T", i, x)))
				return
			}
			y, err := m.Map(x)
			if err != nil {
				yield(Point[T]{X: x}, err)
				return
			}
			if !yield(Point[T]{X: x, Y: y}, nil) {
				return
			}
		}
	}
}
