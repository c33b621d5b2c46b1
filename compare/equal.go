package compare

import (
	"reflect"
)

type visit struct {
	a1, a2 uintptr
	typ    reflect.Type
}

// Equal reports whether a and b are structurally equal.
//
// Scalars are equal when they have the same type and value. Maps are equal when
// they hold the same set of keys with recursively equal values, slices and arrays
// when they have the same length and equal elements position by position, and
// structs when every field is equal. Pointers and interfaces compare their
// targets. A nil slice or map equals an empty one. Functions and channels are
// only equal to themselves.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b), make(map[visit]struct{}))
}

func deepEqual(v1, v2 reflect.Value, visited map[visit]struct{}) bool {
	if !v1.IsValid() || !v2.IsValid() {
		return v1.IsValid() == v2.IsValid()
	}
	if v1.Type() != v2.Type() {
		return false
	}

	// cyclic references are assumed equal once we are already comparing them
	switch v1.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		if v1.Kind() == reflect.Slice && v1.Len() == 0 {
			break
		}
		if v1.UnsafePointer() == v2.UnsafePointer() && (v1.Kind() != reflect.Slice || v1.Len() == v2.Len()) {
			return true
		}
		addr1, addr2 := uintptr(v1.UnsafePointer()), uintptr(v2.UnsafePointer())
		if addr1 > addr2 {
			addr1, addr2 = addr2, addr1
		}
		key := visit{addr1, addr2, v1.Type()}
		if _, ok := visited[key]; ok {
			return true
		}
		visited[key] = struct{}{}
	}

	switch v1.Kind() {
	case reflect.Bool:
		return v1.Bool() == v2.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v1.Int() == v2.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v1.Uint() == v2.Uint()
	case reflect.Float32, reflect.Float64:
		return v1.Float() == v2.Float()
	case reflect.Complex64, reflect.Complex128:
		return v1.Complex() == v2.Complex()
	case reflect.String:
		return v1.String() == v2.String()
	case reflect.Pointer:
		if v1.IsNil() || v2.IsNil() {
			return v1.IsNil() && v2.IsNil()
		}
		return deepEqual(v1.Elem(), v2.Elem(), visited)
	case reflect.Interface:
		if v1.IsNil() || v2.IsNil() {
			return v1.IsNil() && v2.IsNil()
		}
		return deepEqual(v1.Elem(), v2.Elem(), visited)
	case reflect.Slice, reflect.Array:
		if v1.Len() != v2.Len() {
			return false
		}
		for i := 0; i < v1.Len(); i++ {
			if !deepEqual(v1.Index(i), v2.Index(i), visited) {
				return false
			}
		}
		return true
	case reflect.Map:
		if v1.Len() != v2.Len() {
			return false
		}
		iter := v1.MapRange()
		for iter.Next() {
			other := v2.MapIndex(iter.Key())
			if !other.IsValid() || !deepEqual(iter.Value(), other, visited) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v1.NumField(); i++ {
			if !deepEqual(v1.Field(i), v2.Field(i), visited) {
				return false
			}
		}
		return true
	default:
		// Func, Chan, UnsafePointer
		return v1.UnsafePointer() == v2.UnsafePointer()
	}
}

// IsObj reports whether v is a structural value (map, slice, array or struct,
// possibly behind a pointer) that Equal compares by content.
func IsObj(v any) bool {
	switch KindOf(v) {
	case KindObject, KindArray:
		return true
	default:
		return false
	}
}
