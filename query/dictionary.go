package query

type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// Dictionary holds one entry per source element, in source order. Lookups by
// key return the first entry with an equal key.
type Dictionary[K, V any] struct {
	entries []KeyValue[K, V]
	index   *keyIndex
}

// ToDictionary builds a dictionary of the elements keyed by key.
func ToDictionary[T, K any](q *Query[T], key func(T) K) *Dictionary[K, T] {
	return ToDictionaryFunc(q, key, identity[T])
}

// ToDictionaryFunc builds a dictionary of the values produced by value keyed by
// key.
func ToDictionaryFunc[T, K, V any](q *Query[T], key func(T) K, value func(T) V) *Dictionary[K, V] {
	d := &Dictionary[K, V]{
		entries: make([]KeyValue[K, V], 0, q.Len()),
		index:   newKeyIndex(q.Len()),
	}
	for _, v := range q.slice() {
		k := key(v)
		if !d.index.contains(k) {
			d.index.put(k, len(d.entries))
		}
		d.entries = append(d.entries, KeyValue[K, V]{Key: k, Value: value(v)})
	}
	return d
}

func (d *Dictionary[K, V]) Len() int {
	return len(d.entries)
}

// Entries returns the key/value pairs in source order.
func (d *Dictionary[K, V]) Entries() *Query[KeyValue[K, V]] {
	return New(d.entries...)
}

func (d *Dictionary[K, V]) Lookup(key K) (V, bool) {
	p, ok := d.index.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return d.entries[p].Value, true
}

func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	return d.index.contains(key)
}

func (d *Dictionary[K, V]) Keys() []K {
	keys := make([]K, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

func (d *Dictionary[K, V]) Values() []V {
	values := make([]V, len(d.entries))
	for i, e := range d.entries {
		values[i] = e.Value
	}
	return values
}
