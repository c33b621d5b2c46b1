package query

import (
	"iter"
	"slices"

	"linq/compare"
	"linq/lists"
	"linq/seqs"
)

// Query wraps an ordered sequence and exposes the query operations over it.
// The zero value is not usable; construct one with New, From, Empty or FromSeq.
type Query[T any] struct {
	items *lists.ArrayList[T]
}

// New returns a query over a copy of items.
func New[T any](items ...T) *Query[T] {
	return From(slices.Clone(items))
}

// From takes ownership of items without copying them.
func From[T any](items []T) *Query[T] {
	return &Query[T]{items: lists.Wrap(items)}
}

func Empty[T any]() *Query[T] {
	return &Query[T]{items: lists.NewArrayList[T](0)}
}

// FromSeq collects seq into a new query.
func FromSeq[T any](seq iter.Seq[T]) *Query[T] {
	return From(slices.Collect(seq))
}

// Range returns the integers in [start, start+count). A non-positive count
// yields an empty query.
func Range(start, count int) *Query[int] {
	return FromSeq(seqs.Range(start, count))
}

// Repeat returns a query holding count copies of value.
func Repeat[T any](value T, count int) *Query[T] {
	return FromSeq(seqs.Repeat(value, count))
}

func (q *Query[T]) slice() []T {
	return q.items.Slice()
}

// -------------------------------------------------------
// Mutations
// -------------------------------------------------------

func (q *Query[T]) Add(value T) {
	q.items.Add(value)
}

func (q *Query[T]) AddRange(values []T) {
	q.items.Add(values...)
}

// Insert places value at index, shifting later elements right.
// It fails with ErrIndexOutOfRange if index < 0 or index > Len().
func (q *Query[T]) Insert(index int, value T) error {
	return q.items.Insert(index, value)
}

// RemoveAt fails with ErrIndexOutOfRange if index is not a valid position.
func (q *Query[T]) RemoveAt(index int) error {
	_, err := q.items.RemoveAt(index)
	return err
}

// Remove deletes the first element equal to value and reports whether one was
// found.
func (q *Query[T]) Remove(value T) bool {
	return q.items.RemoveFunc(func(v T) bool {
		return compare.Equal(v, value)
	})
}

// -------------------------------------------------------
// Views
// -------------------------------------------------------

// ToList returns q itself. Mutations through either reference are visible to
// both.
func (q *Query[T]) ToList() *Query[T] {
	return q
}

// ToArray returns the backing slice without copying. Element writes are
// visible to q; use ToSlice for an owned copy.
func (q *Query[T]) ToArray() []T {
	return q.slice()
}

// ToSlice returns a copy of the elements.
func (q *Query[T]) ToSlice() []T {
	return slices.Clone(q.slice())
}

// Clone returns an independent query holding the same elements.
func (q *Query[T]) Clone() *Query[T] {
	return &Query[T]{items: q.items.Clone()}
}

// -------------------------------------------------------
// Iteration
// -------------------------------------------------------

func (q *Query[T]) Values() iter.Seq[T] {
	return q.items.Values()
}

// Enumerate yields index/element pairs.
func (q *Query[T]) Enumerate() iter.Seq2[int, T] {
	return q.items.All()
}

func (q *Query[T]) Backward() iter.Seq2[int, T] {
	return q.items.Backward()
}

func (q *Query[T]) ForEach(action func(T)) {
	for _, v := range q.slice() {
		action(v)
	}
}

func (q *Query[T]) Len() int {
	return q.items.Len()
}

// String implements fmt.Stringer for easier debugging.
func (q *Query[T]) String() string {
	return q.items.String()
}
