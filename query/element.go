package query

// matchAll combines optional predicates; with none, every element matches.
func matchAll[T any](predicates []func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// First returns the first element satisfying the optional predicate.
// It fails with ErrEmptySequence if there is none.
func (q *Query[T]) First(predicate ...func(T) bool) (T, error) {
	if v, ok := q.FirstOrDefault(predicate...); ok {
		return v, nil
	}
	var zero T
	return zero, ErrEmptySequence
}

// FirstOrDefault is like First but reports absence with false instead of an
// error.
func (q *Query[T]) FirstOrDefault(predicate ...func(T) bool) (T, bool) {
	match := matchAll(predicate)
	for _, v := range q.slice() {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element satisfying the optional predicate.
// It fails with ErrEmptySequence if there is none.
func (q *Query[T]) Last(predicate ...func(T) bool) (T, error) {
	if v, ok := q.LastOrDefault(predicate...); ok {
		return v, nil
	}
	var zero T
	return zero, ErrEmptySequence
}

func (q *Query[T]) LastOrDefault(predicate ...func(T) bool) (T, bool) {
	match := matchAll(predicate)
	for _, v := range q.Backward() {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Single returns the only element satisfying the optional predicate. It fails
// with ErrEmptySequence if none does and ErrNotExactlyOne if several do.
func (q *Query[T]) Single(predicate ...func(T) bool) (T, error) {
	v, ok, err := q.SingleOrDefault(predicate...)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, ErrEmptySequence
	}
	return v, nil
}

// SingleOrDefault reports absence with false but still fails with
// ErrNotExactlyOne if several elements match.
func (q *Query[T]) SingleOrDefault(predicate ...func(T) bool) (T, bool, error) {
	var (
		match = matchAll(predicate)
		found T
		count int
	)
	for _, v := range q.slice() {
		if !match(v) {
			continue
		}
		count++
		if count > 1 {
			var zero T
			return zero, false, ErrNotExactlyOne
		}
		found = v
	}
	return found, count == 1, nil
}

// ElementAt fails with ErrIndexOutOfRange if index < 0 or index >= Len().
func (q *Query[T]) ElementAt(index int) (T, error) {
	return q.items.Get(index)
}

// ElementAtOrDefault reports false for an out-of-range index. A present zero
// value is reported with true.
func (q *Query[T]) ElementAtOrDefault(index int) (T, bool) {
	v, err := q.items.Get(index)
	return v, err == nil
}

// Any reports whether the query is non-empty or, given a predicate, whether
// any element satisfies it.
func (q *Query[T]) Any(predicate ...func(T) bool) bool {
	_, ok := q.FirstOrDefault(predicate...)
	return ok
}

// All reports whether every element satisfies predicate. It is true for an
// empty query.
func (q *Query[T]) All(predicate func(T) bool) bool {
	for _, v := range q.slice() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count returns the number of elements satisfying the optional predicate.
func (q *Query[T]) Count(predicate ...func(T) bool) int {
	if len(predicate) == 0 {
		return q.Len()
	}
	match := matchAll(predicate)
	count := 0
	for _, v := range q.slice() {
		if match(v) {
			count++
		}
	}
	return count
}
