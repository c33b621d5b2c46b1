package query

import (
	"fmt"
	"reflect"

	"linq/seqs"
)

// Select maps every element through transform, preserving order and length.
func Select[T, R any](q *Query[T], transform func(T) R) *Query[R] {
	collection := q.slice()
	if len(collection) == 0 {
		return Empty[R]()
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return From(res)
}

// SelectIndexed is Select with the element's index passed to transform.
func SelectIndexed[T, R any](q *Query[T], transform func(T, int) R) *Query[R] {
	res := make([]R, q.Len())
	for i, v := range q.slice() {
		res[i] = transform(v, i)
	}
	return From(res)
}

// SelectMany maps every element to a slice and concatenates the slices in
// element order.
func SelectMany[T, R any](q *Query[T], transform func(T) []R) *Query[R] {
	res := make([]R, 0, q.Len())
	for _, v := range q.slice() {
		res = append(res, transform(v)...)
	}
	return From(res)
}

// Zip combines elements positionally. The result is as long as the shorter
// input.
func Zip[T, U, R any](q *Query[T], other *Query[U], combine func(T, U) R) *Query[R] {
	a, b := q.slice(), other.slice()
	n := min(len(a), len(b))
	res := make([]R, n)
	for i := range n {
		res[i] = combine(a[i], b[i])
	}
	return From(res)
}

// ZipPairs is Zip returning the paired elements themselves.
func ZipPairs[T, U any](q *Query[T], other *Query[U]) *Query[seqs.Pair[T, U]] {
	return Zip(q, other, func(a T, b U) seqs.Pair[T, U] {
		return seqs.Pair[T, U]{V1: a, V2: b}
	})
}

// Chunk splits the elements into slices of size. The last chunk may be
// smaller. Each chunk owns its storage.
func Chunk[T any](q *Query[T], size int) *Query[[]T] {
	if size <= 0 {
		panic("query.Chunk: size must be greater than 0")
	}
	collection := q.slice()
	res := make([][]T, 0, (len(collection)+size-1)/size)
	for i := 0; i < len(collection); i += size {
		end := min(i+size, len(collection))
		chunk := make([]T, end-i)
		copy(chunk, collection[i:end])
		res = append(res, chunk)
	}
	return From(res)
}

// Cast converts every element to U with a type assertion. It fails with
// ErrInvalidCast on the first element that is not a U. Unlike the views, the
// result has its own storage: a []T cannot be reinterpreted as a []U.
func Cast[U, T any](q *Query[T]) (*Query[U], error) {
	res := make([]U, q.Len())
	for i, v := range q.slice() {
		u, ok := any(v).(U)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T, not %v", ErrInvalidCast, i, v, reflect.TypeFor[U]())
		}
		res[i] = u
	}
	return From(res), nil
}

// OfType keeps the elements that are a U, converted to U.
func OfType[U, T any](q *Query[T]) *Query[U] {
	res := make([]U, 0, q.Len())
	for _, v := range q.slice() {
		if u, ok := any(v).(U); ok {
			res = append(res, u)
		}
	}
	return From(res)
}
