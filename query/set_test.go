package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linq/query"
)

func TestDistinct(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		q := query.New(3, 1, 3, 2, 1)
		assert.Equal(t, []int{3, 1, 2}, q.Distinct().ToArray())
	})

	t.Run("Structural", func(t *testing.T) {
		q := query.New[any](
			map[string]any{"a": 1.0},
			[]any{1.0, 2.0},
			map[string]any{"a": 1.0},
			"a",
			[]any{1.0, 2.0},
			"a",
		)
		assert.Equal(t, []any{map[string]any{"a": 1.0}, []any{1.0, 2.0}, "a"}, q.Distinct().ToArray())
	})

	t.Run("Idempotent", func(t *testing.T) {
		q := query.New(5, 5, 4, 4, 3, 5)
		once := q.Distinct()
		assert.True(t, once.SequenceEqual(once.Distinct()))
	})
}

func TestDistinctBy(t *testing.T) {
	got := query.DistinctBy(staff(), func(e employee) string { return e.Dept }).ToArray()
	assert.Equal(t, []string{"ann", "bob", "dee"}, query.Select(query.From(got), func(e employee) string { return e.Name }).ToArray())
}

func TestExceptIntersectUnion(t *testing.T) {
	a := query.New(1, 2, 2, 3, 4)
	b := query.New(2, 4, 6)

	assert.Equal(t, []int{1, 3}, a.Except(b).ToArray())
	assert.Equal(t, []int{2, 2, 4}, a.Intersect(b).ToArray())
	assert.Equal(t, []int{1, 2, 3, 4, 6}, a.Union(b).ToArray())
}

func TestExcept_Structural(t *testing.T) {
	a := query.New(employee{"ann", "eng", 31}, employee{"bob", "ops", 45})
	b := query.New(employee{"ann", "eng", 31})
	assert.Equal(t, []employee{{"bob", "ops", 45}}, a.Except(b).ToArray())
}

func TestContainsIndexOf(t *testing.T) {
	q := query.New("a", "b", "c")
	assert.True(t, q.Contains("b"))
	assert.False(t, q.Contains("z"))
	assert.Equal(t, 2, q.IndexOf("c"))
	assert.Equal(t, -1, q.IndexOf("z"))
	assert.Equal(t, 1, q.IndexFunc(func(s string) bool { return s > "a" }))

	objs := query.New([]int{1}, []int{2})
	assert.True(t, objs.Contains([]int{2}))
}

func TestSequenceEqual(t *testing.T) {
	assert.True(t, query.New(1, 2).SequenceEqual(query.New(1, 2)))
	assert.False(t, query.New(1, 2).SequenceEqual(query.New(2, 1)))
	assert.False(t, query.New(1, 2).SequenceEqual(query.New(1)))
	assert.True(t, query.Empty[int]().SequenceEqual(query.Empty[int]()))
}
