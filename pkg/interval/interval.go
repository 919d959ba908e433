package interval

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidRange is returned when an interval is built with start > end.
var ErrInvalidRange = errors.New("interval: invalid range")

// Interval is the closed range [Start, End].
type Interval[T constraints.Signed] struct {
	Start T
	End   T
}

func (r Interval[T]) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

func (r Interval[T]) IsValid() bool {
	return r.Start <= r.End
}

// Len returns the number of integers in r. It wraps around when the count
// does not fit in T.
func (r Interval[T]) Len() T {
	if !r.IsValid() {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Interval[T]) Contains(v T) bool {
	return r.Start <= v && v <= r.End
}

// coveredBy returns whether r is entirely contained within [lo, hi].
func (r Interval[T]) coveredBy(lo, hi T) bool {
	return lo <= r.Start && r.End <= hi
}
