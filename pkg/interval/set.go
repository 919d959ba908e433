package interval

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Set is the disjoint union of closed intervals left over after erasing
// points and ranges from an initial span. Intervals are kept in ascending
// order and are only ever split or dropped, never merged.
type Set[T constraints.Signed] struct {
	rr []Interval[T]
}

// New returns a Set holding the single interval [start, end].
func New[T constraints.Signed](start, end T) (*Set[T], error) {
	r := Interval[T]{Start: start, End: end}
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: start %d is bigger than end %d", ErrInvalidRange, start, end)
	}
	return &Set[T]{rr: []Interval[T]{r}}, nil
}

// Len returns the number of positions left in s. The count must fit in T:
// a Set[int8] spanning [-128, 127] cannot report its 256 positions.
func (s *Set[T]) Len() T {
	var n T
	for _, r := range s.rr {
		n += r.Len()
	}
	return n
}

func (s *Set[T]) IsEmpty() bool { return len(s.rr) == 0 }

func (s *Set[T]) Contains(v T) bool {
	_, ok := s.indexOf(v)
	return ok
}

// Intervals returns a copy of the intervals of s in ascending order.
func (s *Set[T]) Intervals() []Interval[T] {
	return append([]Interval[T]{}, s.rr...)
}

// indexOf returns the index of the interval holding v.
func (s *Set[T]) indexOf(v T) (int, bool) {
	idx := sort.Search(len(s.rr), func(i int) bool { return s.rr[i].End >= v })
	if idx < len(s.rr) && s.rr[idx].Contains(v) {
		return idx, true
	}
	return 0, false
}

// ErasePoint removes pos from s. The interval holding pos is split in two;
// a half that ends up empty is dropped.
func (s *Set[T]) ErasePoint(pos T) {
	idx, ok := s.indexOf(pos)
	if !ok {
		return
	}
	r := s.rr[idx]
	// comparing against the bounds avoids pos-1/pos+1 wrapping around
	hasLeft, hasRight := r.Start < pos, pos < r.End
	left := Interval[T]{Start: r.Start, End: pos - 1}
	right := Interval[T]{Start: pos + 1, End: r.End}

	switch {
	case !hasLeft && !hasRight:
		s.rr = append(s.rr[:idx], s.rr[idx+1:]...)
	case !hasLeft:
		s.rr[idx] = right
	case !hasRight:
		s.rr[idx] = left
	default:
		s.rr[idx] = left
		s.rr = append(s.rr, Interval[T]{})
		copy(s.rr[idx+2:], s.rr[idx+1:])
		s.rr[idx+1] = right
	}
}

// EraseRange removes every position in [lo, hi] from s. Intervals
// straddling lo or hi are split first, after which every interval left
// inside [lo, hi] is dropped.
func (s *Set[T]) EraseRange(lo, hi T) {
	if lo > hi {
		return
	}
	s.ErasePoint(lo)
	s.ErasePoint(hi)

	out := s.rr[:0]
	for _, r := range s.rr {
		if r.coveredBy(lo, hi) {
			continue
		}
		out = append(out, r)
	}
	s.rr = out
}

// Erase applies e to s.
func (s *Set[T]) Erase(e Erasure[T]) {
	switch e.kind {
	case erasePoint:
		s.ErasePoint(e.lo)
	case eraseSpan:
		s.EraseRange(e.lo, e.hi)
	}
}

// Positions returns the remaining positions in ascending order. The
// sequence reads s lazily and can be ranged over more than once.
func (s *Set[T]) Positions() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range s.rr {
			for v := r.Start; v <= r.End; v++ {
				if !yield(v) {
					return
				}
				// guard against overflow at the top of T
				if v == r.End {
					break
				}
			}
		}
	}
}

func (s *Set[T]) String() string {
	parts := make([]string, 0, len(s.rr))
	for _, r := range s.rr {
		parts = append(parts, r.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
