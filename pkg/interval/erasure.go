package interval

import "golang.org/x/exp/constraints"

type eraseKind int

const (
	erasePoint eraseKind = iota
	eraseSpan
)

// Erasure is something that can be erased from a Set: either a single
// point or a closed span.
type Erasure[T constraints.Signed] struct {
	kind eraseKind
	lo   T
	hi   T
}

func ErasePoint[T constraints.Signed](p T) Erasure[T] {
	return Erasure[T]{kind: erasePoint, lo: p, hi: p}
}

func EraseSpan[T constraints.Signed](lo, hi T) Erasure[T] {
	return Erasure[T]{kind: eraseSpan, lo: lo, hi: hi}
}
