// Package lists provides the contiguous, bounds-checked backing store used by
// the query engine.
package lists

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ArrayList is an ordered, growable sequence backed by a single slice.
// Index order is insertion order unless reordered by SortStableFunc or Reverse.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// Wrap takes ownership of items without copying them.
func Wrap[T any](items []T) *ArrayList[T] {
	if items == nil {
		items = []T{}
	}
	return &ArrayList[T]{data: items}
}

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return outOfRange(index, len(al.data))
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	return nil
}

// InsertAll inserts values at index with a single shift of the tail.
func (al *ArrayList[T]) InsertAll(index int, values ...T) error {
	if index < 0 || index > len(al.data) {
		return outOfRange(index, len(al.data))
	}
	if len(values) == 0 {
		return nil
	}
	al.data = slices.Insert(al.data, index, values...)
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfRange(index, len(al.data))
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return outOfRange(index, len(al.data))
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfRange(index, len(al.data))
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

// RemoveFunc removes the first element matching predicate.
// It reports whether an element was removed.
func (al *ArrayList[T]) RemoveFunc(predicate func(T) bool) bool {
	idx := slices.IndexFunc(al.data, predicate)
	if idx < 0 {
		return false
	}
	_, _ = al.RemoveAt(idx)
	return true
}

func (al *ArrayList[T]) SortStableFunc(compare func(a, b T) int) {
	slices.SortStableFunc(al.data, compare)
}

func (al *ArrayList[T]) Reverse() {
	slices.Reverse(al.data)
}

func (al *ArrayList[T]) Len() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// Slice returns the backing slice itself. Writes through it are visible to
// the list, appends are not.
func (al *ArrayList[T]) Slice() []T {
	return al.data
}

// Clone returns a shallow copy with its own backing slice.
// If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	newItems := make([]T, len(al.data))
	copy(newItems, al.data)
	return &ArrayList[T]{
		data: newItems,
	}
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.data, predicate)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}
