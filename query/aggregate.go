package query

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func identity[T any](v T) T {
	return v
}

// Aggregate folds the elements left to right, seeding with the first element.
// It fails with ErrEmptySequence on an empty query; use Fold to supply a seed.
func (q *Query[T]) Aggregate(accumulator func(acc, v T) T) (T, error) {
	collection := q.slice()
	if len(collection) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	result := collection[0]
	for _, item := range collection[1:] {
		result = accumulator(result, item)
	}
	return result, nil
}

// Fold folds the elements left to right starting from seed. It never fails.
func Fold[T, R any](q *Query[T], seed R, accumulator func(R, T) R) R {
	collection := q.slice()
	if len(collection) == 0 {
		return seed
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	result := seed
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}

// Sum returns 0 for an empty query.
func Sum[T Number](q *Query[T]) T {
	return SumOf(q, identity[T])
}

// SumOf sums the values produced by transform.
func SumOf[T any, N Number](q *Query[T], transform func(T) N) N {
	return Fold(q, N(0), func(total N, v T) N {
		return total + transform(v)
	})
}

// Min fails with ErrEmptySequence on an empty query.
func Min[T constraints.Ordered](q *Query[T]) (T, error) {
	return MinOf(q, identity[T])
}

// MinOf returns the smallest value produced by transform.
func MinOf[T any, K constraints.Ordered](q *Query[T], transform func(T) K) (K, error) {
	return extremum(q, transform, func(a, b K) bool { return a < b })
}

// Max fails with ErrEmptySequence on an empty query.
func Max[T constraints.Ordered](q *Query[T]) (T, error) {
	return MaxOf(q, identity[T])
}

// MaxOf returns the largest value produced by transform.
func MaxOf[T any, K constraints.Ordered](q *Query[T], transform func(T) K) (K, error) {
	return extremum(q, transform, func(a, b K) bool { return a > b })
}

func extremum[T any, K constraints.Ordered](q *Query[T], transform func(T) K, better func(a, b K) bool) (K, error) {
	collection := q.slice()
	if len(collection) == 0 {
		var zero K
		return zero, ErrEmptySequence
	}
	best := transform(collection[0])
	for _, v := range collection[1:] {
		if k := transform(v); better(k, best) {
			best = k
		}
	}
	return best, nil
}

// MinBy returns the first element with the smallest key.
func MinBy[T any, K constraints.Ordered](q *Query[T], key func(T) K) (T, error) {
	return extremumBy(q, key, func(a, b K) bool { return a < b })
}

// MaxBy returns the first element with the largest key.
func MaxBy[T any, K constraints.Ordered](q *Query[T], key func(T) K) (T, error) {
	return extremumBy(q, key, func(a, b K) bool { return a > b })
}

func extremumBy[T any, K constraints.Ordered](q *Query[T], key func(T) K, better func(a, b K) bool) (T, error) {
	collection := q.slice()
	if len(collection) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	best, bestKey := collection[0], key(collection[0])
	for _, v := range collection[1:] {
		if k := key(v); better(k, bestKey) {
			best, bestKey = v, k
		}
	}
	return best, nil
}

// Average fails with ErrEmptySequence on an empty query.
func Average[T Number](q *Query[T]) (float64, error) {
	return AverageOf(q, identity[T])
}

// AverageOf averages the values produced by transform.
func AverageOf[T any, N Number](q *Query[T], transform func(T) N) (float64, error) {
	if q.Len() == 0 {
		return 0, ErrEmptySequence
	}
	total := Fold(q, 0.0, func(total float64, v T) float64 {
		return total + float64(transform(v))
	})
	return total / float64(q.Len()), nil
}
