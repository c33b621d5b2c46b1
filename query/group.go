package query

import (
	"iter"
)

// Group is one key of a Lookup with the elements that share it.
type Group[K, V any] struct {
	Key   K
	Items *Query[V]
}

// Lookup maps keys to groups of values. Keys keep the order in which they were
// first seen, values keep insertion order within their group. Keys are matched
// with compare.Equal.
type Lookup[K, V any] struct {
	groups []*Group[K, V]
	index  *keyIndex
}

func newLookup[K, V any](capacity int) *Lookup[K, V] {
	return &Lookup[K, V]{index: newKeyIndex(capacity)}
}

func (l *Lookup[K, V]) add(key K, value V) {
	if p, ok := l.index.find(key); ok {
		l.groups[p].Items.Add(value)
		return
	}
	l.index.put(key, len(l.groups))
	l.groups = append(l.groups, &Group[K, V]{Key: key, Items: New(value)})
}

func (l *Lookup[K, V]) Len() int {
	return len(l.groups)
}

// Get returns the group for key.
func (l *Lookup[K, V]) Get(key K) (*Query[V], bool) {
	p, ok := l.index.find(key)
	if !ok {
		return nil, false
	}
	return l.groups[p].Items, true
}

func (l *Lookup[K, V]) Contains(key K) bool {
	return l.index.contains(key)
}

func (l *Lookup[K, V]) Keys() []K {
	keys := make([]K, len(l.groups))
	for i, g := range l.groups {
		keys[i] = g.Key
	}
	return keys
}

// Groups returns the groups in first-seen key order.
func (l *Lookup[K, V]) Groups() *Query[*Group[K, V]] {
	return New(l.groups...)
}

func (l *Lookup[K, V]) All() iter.Seq2[K, *Query[V]] {
	return func(yield func(K, *Query[V]) bool) {
		for _, g := range l.groups {
			if !yield(g.Key, g.Items) {
				return
			}
		}
	}
}

// GroupBy groups the elements by the key returned by key.
func GroupBy[T, K any](q *Query[T], key func(T) K) *Lookup[K, T] {
	return GroupByFunc(q, key, identity[T])
}

// GroupByFunc groups the values produced by element under the key returned by
// key.
func GroupByFunc[T, K, V any](q *Query[T], key func(T) K, element func(T) V) *Lookup[K, V] {
	l := newLookup[K, V](q.Len())
	for _, v := range q.slice() {
		l.add(key(v), element(v))
	}
	return l
}

// ToLookup is GroupByFunc.
func ToLookup[T, K, V any](q *Query[T], key func(T) K, element func(T) V) *Lookup[K, V] {
	return GroupByFunc(q, key, element)
}

// GroupJoin pairs every element of q with the elements of inner whose key
// equals its own. Keys are compared pairwise, so the cost is O(n·m).
func GroupJoin[T, U, K, R any](
	q *Query[T],
	inner *Query[U],
	outerKey func(T) K,
	innerKey func(U) K,
	result func(T, *Query[U]) R,
) *Query[R] {
	innerKeys := Select(inner, innerKey).slice()
	innerItems := inner.slice()

	res := make([]R, q.Len())
	for i, v := range q.slice() {
		k := outerKey(v)
		matched := make([]U, 0)
		for j, ik := range innerKeys {
			if keysEqual(k, ik) {
				matched = append(matched, innerItems[j])
			}
		}
		res[i] = result(v, From(matched))
	}
	return From(res)
}

// Join emits result for every pair of elements with equal keys, ordered by q
// first and inner second.
func Join[T, U, K, R any](
	q *Query[T],
	inner *Query[U],
	outerKey func(T) K,
	innerKey func(U) K,
	result func(T, U) R,
) *Query[R] {
	innerKeys := Select(inner, innerKey).slice()
	innerItems := inner.slice()

	res := make([]R, 0, q.Len())
	for _, v := range q.slice() {
		k := outerKey(v)
		for j, ik := range innerKeys {
			if keysEqual(k, ik) {
				res = append(res, result(v, innerItems[j]))
			}
		}
	}
	return From(res)
}
