package compare

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var ErrUnknownKind = errors.New("unknown kind")

// Kind is a closed set of element categories used to filter heterogeneous
// sequences.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
	KindFunc
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "bool",
	KindNumber:  "number",
	KindString:  "string",
	KindObject:  "object",
	KindArray:   "array",
	KindFunc:    "func",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name && Kind(k) != KindInvalid {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindOf classifies v. Nil values and nil pointers are KindNull, maps and
// structs are KindObject, slices and arrays are KindArray. Pointers and
// interfaces are classified by what they point to.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	return kindOf(reflect.ValueOf(v))
}

func kindOf(v reflect.Value) Kind {
	switch v.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Func:
		return KindFunc
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return KindNull
		}
		return kindOf(v.Elem())
	default:
		return KindInvalid
	}
}
