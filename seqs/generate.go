package seqs

import (
	"iter"
)

// Range yields the integers in [start, start+count).
func Range(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range max(count, 0) {
			if !yield(start + i) {
				return
			}
		}
	}
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}
