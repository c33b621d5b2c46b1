package compare

import (
	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

// Comparer is a total order over two values.
type Comparer[T any] func(a, b T) int

// Natural orders keys by their built-in ordering.
func Natural[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NaturalString orders strings the way humans do, treating digit runs as
// numbers ("file2" sorts before "file10").
func NaturalString(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}

// KeyComparer orders values by the natural ordering of the key extracted with
// key, inverted when descending is true.
func KeyComparer[T any, K constraints.Ordered](key func(T) K, descending bool) Comparer[T] {
	return KeyComparerFunc(key, Natural[K], descending)
}

// KeyComparerFunc is like KeyComparer but orders keys with cmp.
func KeyComparerFunc[T, K any](key func(T) K, cmp Comparer[K], descending bool) Comparer[T] {
	if key == nil || cmp == nil {
		panic("compare.KeyComparerFunc: key selector and comparer cannot be nil")
	}
	if descending {
		return func(a, b T) int {
			return cmp(key(b), key(a))
		}
	}
	return func(a, b T) int {
		return cmp(key(a), key(b))
	}
}

// Compose orders by primary and breaks ties with secondary.
func Compose[T any](primary, secondary Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		if r := primary(a, b); r != 0 {
			return r
		}
		return secondary(a, b)
	}
}

// Reverse inverts c.
func Reverse[T any](c Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Chain is an ordered list of comparers. Each one is consulted only when every
// comparer before it reported a tie, so long chains never nest closures.
type Chain[T any] struct {
	comparers []Comparer[T]
}

func NewChain[T any](comparers ...Comparer[T]) Chain[T] {
	cs := make([]Comparer[T], 0, len(comparers))
	for _, c := range comparers {
		if c != nil {
			cs = append(cs, c)
		}
	}
	return Chain[T]{comparers: cs}
}

// Then returns a copy of the chain with next appended as the lowest priority
// tie-breaker. The receiver is left untouched.
func (c Chain[T]) Then(next Comparer[T]) Chain[T] {
	cs := make([]Comparer[T], len(c.comparers), len(c.comparers)+1)
	copy(cs, c.comparers)
	if next != nil {
		cs = append(cs, next)
	}
	return Chain[T]{comparers: cs}
}

func (c Chain[T]) Compare(a, b T) int {
	for _, cmp := range c.comparers {
		if r := cmp(a, b); r != 0 {
			return r
		}
	}
	return 0
}

func (c Chain[T]) Len() int {
	return len(c.comparers)
}
