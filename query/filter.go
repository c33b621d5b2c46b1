package query

import (
	"slices"

	"linq/compare"
)

// Where keeps the elements that satisfy predicate, preserving their order.
func (q *Query[T]) Where(predicate func(T) bool) *Query[T] {
	collection := q.slice()
	if len(collection) == 0 {
		return Empty[T]()
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return From(res)
}

// WhereIndexed is Where with the element's index passed to predicate.
func (q *Query[T]) WhereIndexed(predicate func(T, int) bool) *Query[T] {
	res := make([]T, 0, q.Len()/2)
	for i, v := range q.slice() {
		if predicate(v, i) {
			res = append(res, v)
		}
	}
	return From(res)
}

// RemoveAll returns a new query without the elements matching predicate.
// The receiver is left untouched.
func (q *Query[T]) RemoveAll(predicate func(T) bool) *Query[T] {
	return q.Where(compare.Negate(predicate))
}

// OfKind keeps the elements classified as kind by compare.KindOf.
func (q *Query[T]) OfKind(kind compare.Kind) *Query[T] {
	return q.Where(func(v T) bool {
		return compare.KindOf(v) == kind
	})
}

func (q *Query[T]) Reverse() *Query[T] {
	res := q.Clone()
	res.items.Reverse()
	return res
}

// Take returns the first n elements. n is clamped to [0, Len()].
func (q *Query[T]) Take(n int) *Query[T] {
	n = min(max(n, 0), q.Len())
	return From(slices.Clone(q.slice()[:n]))
}

// Skip returns the elements after the first n. n is clamped to [0, Len()].
func (q *Query[T]) Skip(n int) *Query[T] {
	n = min(max(n, 0), q.Len())
	return From(slices.Clone(q.slice()[n:]))
}

// TakeLast returns the last n elements.
func (q *Query[T]) TakeLast(n int) *Query[T] {
	return q.Skip(q.Len() - max(n, 0))
}

// SkipLast returns every element but the last n.
func (q *Query[T]) SkipLast(n int) *Query[T] {
	return q.Take(q.Len() - max(n, 0))
}

// prefixLen is the number of leading elements satisfying predicate.
func (q *Query[T]) prefixLen(predicate func(T) bool) int {
	for i, v := range q.slice() {
		if !predicate(v) {
			return i
		}
	}
	return q.Len()
}

// TakeWhile returns the leading elements for which predicate holds, stopping
// at the first element for which it does not.
func (q *Query[T]) TakeWhile(predicate func(T) bool) *Query[T] {
	return q.Take(q.prefixLen(predicate))
}

// SkipWhile drops the leading elements for which predicate holds and returns
// the rest, including later elements that would satisfy it again.
func (q *Query[T]) SkipWhile(predicate func(T) bool) *Query[T] {
	return q.Skip(q.prefixLen(predicate))
}

// Concat appends other after the receiver's elements without removing
// duplicates.
func (q *Query[T]) Concat(other *Query[T]) *Query[T] {
	res := make([]T, 0, q.Len()+other.Len())
	res = append(res, q.slice()...)
	res = append(res, other.slice()...)
	return From(res)
}

// DefaultIfEmpty returns q itself when it has elements. Otherwise it returns a
// single-element query holding def, or the zero value of T when def is omitted.
func (q *Query[T]) DefaultIfEmpty(def ...T) *Query[T] {
	if q.Len() > 0 {
		return q
	}
	var v T
	if len(def) > 0 {
		v = def[0]
	}
	return From([]T{v})
}
