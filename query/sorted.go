package query

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"linq/compare"
)

// Sorted is a query whose elements are kept in the order induced by an
// ordered list of sort keys. Every Query operation is available on it; the
// ones returning a new query return a plain, unsorted Query.
type Sorted[T any] struct {
	*Query[T]
	chain compare.Chain[T]
}

func sortedFrom[T any](q *Query[T], chain compare.Chain[T]) *Sorted[T] {
	s := &Sorted[T]{
		Query: q.Clone(),
		chain: chain,
	}
	s.items.SortStableFunc(chain.Compare)
	return s
}

// OrderBy sorts ascending by key.
func OrderBy[T any, K constraints.Ordered](q *Query[T], key func(T) K) *Sorted[T] {
	return sortedFrom(q, compare.NewChain(compare.KeyComparer(key, false)))
}

// OrderByDescending sorts descending by key.
func OrderByDescending[T any, K constraints.Ordered](q *Query[T], key func(T) K) *Sorted[T] {
	return sortedFrom(q, compare.NewChain(compare.KeyComparer(key, true)))
}

// OrderByFunc sorts ascending by key, ordering keys with cmp.
func OrderByFunc[T, K any](q *Query[T], key func(T) K, cmp compare.Comparer[K]) *Sorted[T] {
	return sortedFrom(q, compare.NewChain(compare.KeyComparerFunc(key, cmp, false)))
}

// OrderByDescendingFunc sorts descending by key, ordering keys with cmp.
func OrderByDescendingFunc[T, K any](q *Query[T], key func(T) K, cmp compare.Comparer[K]) *Sorted[T] {
	return sortedFrom(q, compare.NewChain(compare.KeyComparerFunc(key, cmp, true)))
}

// ThenBy returns a copy of s with key appended as an ascending tie-breaker,
// re-sorted immediately. s itself is unchanged.
func ThenBy[T any, K constraints.Ordered](s *Sorted[T], key func(T) K) *Sorted[T] {
	return s.then(compare.KeyComparer(key, false))
}

// ThenByDescending is ThenBy with a descending tie-breaker.
func ThenByDescending[T any, K constraints.Ordered](s *Sorted[T], key func(T) K) *Sorted[T] {
	return s.then(compare.KeyComparer(key, true))
}

func ThenByFunc[T, K any](s *Sorted[T], key func(T) K, cmp compare.Comparer[K]) *Sorted[T] {
	return s.then(compare.KeyComparerFunc(key, cmp, false))
}

func ThenByDescendingFunc[T, K any](s *Sorted[T], key func(T) K, cmp compare.Comparer[K]) *Sorted[T] {
	return s.then(compare.KeyComparerFunc(key, cmp, true))
}

func (s *Sorted[T]) then(next compare.Comparer[T]) *Sorted[T] {
	return sortedFrom(s.Query, s.chain.Then(next))
}

// Comparer returns the composite ordering of s.
func (s *Sorted[T]) Comparer() compare.Comparer[T] {
	return s.chain.Compare
}

// KeyCount returns the number of sort keys in the ordering.
func (s *Sorted[T]) KeyCount() int {
	return s.chain.Len()
}

// ToList returns s itself, so additions through it keep the ordering.
func (s *Sorted[T]) ToList() *Sorted[T] {
	return s
}

// Add inserts value after every element that does not sort after it, keeping
// the ordering stable.
func (s *Sorted[T]) Add(value T) {
	data := s.slice()
	idx := sort.Search(len(data), func(i int) bool {
		return s.chain.Compare(data[i], value) > 0
	})
	_ = s.items.Insert(idx, value)
}

func (s *Sorted[T]) AddRange(values []T) {
	for _, v := range values {
		s.Add(v)
	}
}

// Insert fails with ErrOrderViolation if value does not belong at index.
func (s *Sorted[T]) Insert(index int, value T) error {
	data := s.slice()
	if index < 0 || index > len(data) {
		return s.items.Insert(index, value)
	}
	if index > 0 && s.chain.Compare(data[index-1], value) > 0 ||
		index < len(data) && s.chain.Compare(value, data[index]) > 0 {
		return fmt.Errorf("%w: index %d", ErrOrderViolation, index)
	}
	return s.items.Insert(index, value)
}
