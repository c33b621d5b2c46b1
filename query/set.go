package query

import (
	"linq/compare"
)

// Distinct keeps the first occurrence of each element, preserving first-seen
// order.
func (q *Query[T]) Distinct() *Query[T] {
	seen := newKeyIndex(q.Len())
	res := make([]T, 0, q.Len())
	for _, v := range q.slice() {
		if seen.add(v) {
			res = append(res, v)
		}
	}
	return From(res)
}

// DistinctBy keeps the first element for each key returned by key.
func DistinctBy[T, K any](q *Query[T], key func(T) K) *Query[T] {
	seen := newKeyIndex(q.Len())
	res := make([]T, 0, q.Len())
	for _, v := range q.slice() {
		if seen.add(key(v)) {
			res = append(res, v)
		}
	}
	return From(res)
}

func (q *Query[T]) indexOf(other *Query[T]) *keyIndex {
	ix := newKeyIndex(other.Len())
	for _, v := range other.slice() {
		ix.add(v)
	}
	return ix
}

// Except returns the receiver's elements that do not occur in other.
func (q *Query[T]) Except(other *Query[T]) *Query[T] {
	exclude := q.indexOf(other)
	return q.Where(func(v T) bool {
		return !exclude.contains(v)
	})
}

// Intersect returns the receiver's elements that also occur in other.
func (q *Query[T]) Intersect(other *Query[T]) *Query[T] {
	include := q.indexOf(other)
	return q.Where(func(v T) bool {
		return include.contains(v)
	})
}

// Union concatenates other and removes duplicates.
func (q *Query[T]) Union(other *Query[T]) *Query[T] {
	return q.Concat(other).Distinct()
}

// Contains reports whether an element equal to value exists.
func (q *Query[T]) Contains(value T) bool {
	return q.IndexOf(value) >= 0
}

// IndexOf returns the position of the first element equal to value, or -1.
func (q *Query[T]) IndexOf(value T) int {
	return q.IndexFunc(func(v T) bool {
		return compare.Equal(v, value)
	})
}

// IndexFunc returns the position of the first element satisfying predicate,
// or -1.
func (q *Query[T]) IndexFunc(predicate func(T) bool) int {
	return q.items.IndexFunc(predicate)
}

// SequenceEqual reports whether both queries hold equal elements in the same
// order.
func (q *Query[T]) SequenceEqual(other *Query[T]) bool {
	a, b := q.slice(), other.slice()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compare.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
