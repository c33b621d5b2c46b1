// Package jsonpath resolves gjson paths against decoded JSON values and orders
// the results, so command-line selectors can drive the query engine.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"linq/compare"
)

// Selector is a path with an optional "-" prefix marking descending order.
type Selector struct {
	Path       string
	Descending bool
}

func ParseSelector(s string) Selector {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return Selector{Path: rest, Descending: true}
	}
	return Selector{Path: strings.TrimPrefix(s, "+")}
}

// Get returns the value at path inside v, or nil when nothing is there. An
// empty path or "@this" selects v itself.
func Get(v any, path string) (any, error) {
	if path == "" || path == "@this" {
		return v, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode element: %w", err)
	}
	res := gjson.GetBytes(raw, path)
	if !res.Exists() {
		return nil, nil
	}
	return res.Value(), nil
}

// Key returns a key selector for path. The first resolution error is kept in
// *errp since selectors cannot fail.
func Key(path string, errp *error) func(any) any {
	return func(v any) any {
		k, err := Get(v, path)
		if err != nil && *errp == nil {
			*errp = err
		}
		return k
	}
}

// Truthy follows JSON conventions: null, false, 0 and "" are false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// ParseValue decodes s as JSON, falling back to the plain string.
func ParseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

var kindRank = map[compare.Kind]int{
	compare.KindNull:   0,
	compare.KindBool:   1,
	compare.KindNumber: 2,
	compare.KindString: 3,
	compare.KindArray:  4,
	compare.KindObject: 5,
}

// Compare orders decoded JSON values: null < bool < number < string < array <
// object. Values of the same kind compare naturally; arrays and objects by
// their encoded form.
func Compare(a, b any) int {
	return compareWith(a, b, compare.Natural[string])
}

// CompareNatural is Compare with human ordering of strings.
func CompareNatural(a, b any) int {
	return compareWith(a, b, compare.NaturalString)
}

func compareWith(a, b any, strcmp compare.Comparer[string]) int {
	ka, kb := compare.KindOf(a), compare.KindOf(b)
	if ka != kb {
		return compare.Natural(kindRank[ka], kindRank[kb])
	}
	switch ka {
	case compare.KindNull:
		return 0
	case compare.KindBool:
		return compare.Natural(boolRank(a.(bool)), boolRank(b.(bool)))
	case compare.KindNumber:
		fa, _ := a.(float64)
		fb, _ := b.(float64)
		return compare.Natural(fa, fb)
	case compare.KindString:
		return strcmp(a.(string), b.(string))
	default:
		ra, _ := json.Marshal(a)
		rb, _ := json.Marshal(b)
		return compare.Natural(string(ra), string(rb))
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
