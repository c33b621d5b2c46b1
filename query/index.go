package query

import (
	"reflect"

	"linq/compare"
)

// keyIndex maps keys to positions under compare.Equal. Scalar keys are hashed,
// structural keys fall back to a linear scan.
type keyIndex struct {
	hashed map[any]int
	keys   []any
	pos    []int
}

func newKeyIndex(capacity int) *keyIndex {
	return &keyIndex{hashed: make(map[any]int, capacity)}
}

func hashable(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

func (ix *keyIndex) find(key any) (int, bool) {
	if hashable(key) {
		p, ok := ix.hashed[key]
		return p, ok
	}
	for i, k := range ix.keys {
		if compare.Equal(k, key) {
			return ix.pos[i], true
		}
	}
	return 0, false
}

// put records key at position p. The caller must have checked that key is absent.
func (ix *keyIndex) put(key any, p int) {
	if hashable(key) {
		ix.hashed[key] = p
		return
	}
	ix.keys = append(ix.keys, key)
	ix.pos = append(ix.pos, p)
}

// add reports whether key was not present before the call.
func (ix *keyIndex) add(key any) bool {
	if _, ok := ix.find(key); ok {
		return false
	}
	ix.put(key, 0)
	return true
}

func (ix *keyIndex) contains(key any) bool {
	_, ok := ix.find(key)
	return ok
}

func keysEqual[K any](a, b K) bool {
	return compare.Equal(a, b)
}
