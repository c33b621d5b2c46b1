package compare

// Negate returns the logical complement of predicate.
func Negate[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}

// Negate2 is Negate for two-argument predicates, such as indexed filters.
func Negate2[T, U any](predicate func(T, U) bool) func(T, U) bool {
	return func(a T, b U) bool {
		return !predicate(a, b)
	}
}
