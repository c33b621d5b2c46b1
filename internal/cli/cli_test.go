package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linq/compare"
	"linq/internal/cli"
	"linq/query"
)

const people = `[
	{"name": "ann", "team": "eng", "age": 31},
	{"name": "bob", "team": "ops", "age": 45},
	{"name": "cid", "team": "eng", "age": 27},
	{"name": "dee", "team": "hr", "age": 31}
]`

func lq(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func names(t *testing.T, out string) []string {
	t.Helper()
	var items []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	res := make([]string, 0, len(items))
	for _, it := range items {
		res = append(res, it.Name)
	}
	return res
}

func TestSort(t *testing.T) {
	out, err := lq(t, people, "sort", "--by", "age", "--by", "-name")
	require.NoError(t, err)
	assert.Equal(t, []string{"cid", "dee", "ann", "bob"}, names(t, out))

	out, err = lq(t, people, "sort", "--by", "-age")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "ann", "dee", "cid"}, names(t, out), "ties keep input order")
}

func TestSort_Natural(t *testing.T) {
	files := `["file10", "file2", "file1"]`

	out, err := lq(t, files, "sort", "--by", "@this")
	require.NoError(t, err)
	assert.JSONEq(t, `["file1", "file10", "file2"]`, out)

	out, err = lq(t, files, "sort", "--by", "@this", "--natural")
	require.NoError(t, err)
	assert.JSONEq(t, `["file1", "file2", "file10"]`, out)
}

func TestSort_ResolvedKeys(t *testing.T) {
	in := `[
		{"id": 1, "meta": {"rank": 2, "tag": "b"}},
		{"id": 2, "meta": {"rank": 1, "tag": "a"}},
		{"id": 3, "meta": {"rank": 2, "tag": "a"}},
		{"id": 4},
		{"id": 5, "meta": {"rank": 1, "tag": "a"}}
	]`

	out, err := lq(t, in, "sort", "--by", "meta.rank", "--by", "-meta.tag")
	require.NoError(t, err)
	var got []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	ids := make([]int, 0, len(got))
	for _, g := range got {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []int{4, 2, 5, 1, 3}, ids, "missing keys sort first, ties keep input order")

	out, err = lq(t, `[]`, "sort", "--by", "id")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestSort_RequiresKey(t *testing.T) {
	_, err := lq(t, people, "sort")
	assert.Error(t, err)
}

func TestDistinct(t *testing.T) {
	out, err := lq(t, `[1, 2, 1, {"a": [1]}, {"a": [1]}, 3]`, "distinct")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, {"a": [1]}, 3]`, out)

	out, err = lq(t, people, "distinct", "--by", "team")
	require.NoError(t, err)
	assert.Equal(t, []string{"ann", "bob", "dee"}, names(t, out))
}

func TestGroup(t *testing.T) {
	out, err := lq(t, people, "group", "--by", "team", "--select", "name")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"key": "eng", "items": ["ann", "cid"]},
		{"key": "ops", "items": ["bob"]},
		{"key": "hr", "items": ["dee"]}
	]`, out)
}

func TestSelect(t *testing.T) {
	out, err := lq(t, people, "select", "--path", "name")
	require.NoError(t, err)
	assert.JSONEq(t, `["ann", "bob", "cid", "dee"]`, out)

	out, err = lq(t, `[{"a": 1}, {}]`, "select", "--path", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, null]`, out)
}

func TestWhere(t *testing.T) {
	out, err := lq(t, people, "where", "--path", "team", "--eq", `"eng"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"ann", "cid"}, names(t, out))

	out, err = lq(t, people, "where", "--path", "age", "--eq", "31", "--not")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "cid"}, names(t, out))

	out, err = lq(t, `[0, 1, "", "x", null, false, true]`, "where")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "x", true]`, out)
}

func TestFirstLast(t *testing.T) {
	out, err := lq(t, people, "first", "--path", "team", "--eq", `"ops"`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "bob", "team": "ops", "age": 45}`, out)

	out, err = lq(t, people, "last", "--path", "age", "--eq", "31")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "dee", "team": "hr", "age": 31}`, out)

	_, err = lq(t, `[]`, "first")
	require.ErrorIs(t, err, query.ErrEmptySequence)

	_, err = lq(t, people, "last", "--path", "team", "--eq", `"qa"`)
	require.ErrorIs(t, err, query.ErrEmptySequence)
}

func TestCount(t *testing.T) {
	out, err := lq(t, people, "count")
	require.NoError(t, err)
	assert.JSONEq(t, `4`, out)

	out, err = lq(t, people, "count", "--path", "team", "--eq", `"eng"`)
	require.NoError(t, err)
	assert.JSONEq(t, `2`, out)
}

func TestTakeSkip(t *testing.T) {
	out, err := lq(t, people, "take", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"ann", "bob"}, names(t, out))

	path := writeFile(t, "people.json", people)
	out, err = lq(t, "", "skip", "3", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dee"}, names(t, out))

	out, err = lq(t, people, "take", "--", "-1")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)

	_, err = lq(t, people, "take", "two")
	assert.Error(t, err)
}

func TestReverse(t *testing.T) {
	out, err := lq(t, `[1, 2, 3]`, "reverse")
	require.NoError(t, err)
	assert.JSONEq(t, `[3, 2, 1]`, out)
}

func TestKind(t *testing.T) {
	in := `[1, "a", null, {"x": 1}, [2], true, 2.5]`

	out, err := lq(t, in, "kind", "number")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2.5]`, out)

	out, err = lq(t, in, "kind", "object")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x": 1}]`, out)

	_, err = lq(t, in, "kind", "date")
	require.ErrorIs(t, err, compare.ErrUnknownKind)
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{"sum", `134`},
		{"min", `27`},
		{"max", `45`},
		{"avg", `33.5`},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			out, err := lq(t, people, tt.cmd, "--path", "age")
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}

	out, err := lq(t, `[1, "x", 2, null]`, "sum")
	require.NoError(t, err)
	assert.JSONEq(t, `3`, out, "non-numbers are skipped")

	_, err = lq(t, `["x"]`, "avg")
	require.ErrorIs(t, err, query.ErrEmptySequence)
}

func TestSetOperations(t *testing.T) {
	other := writeFile(t, "other.json", `[2, 3, {"k": 4}]`)
	in := `[1, 2, 2, {"k": 4}, 5]`

	tests := []struct {
		cmd  string
		want string
	}{
		{"union", `[1, 2, {"k": 4}, 5, 3]`},
		{"except", `[1, 5]`},
		{"intersect", `[2, 2, {"k": 4}]`},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			out, err := lq(t, in, tt.cmd, "--with", other)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestInput(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "people.yaml", "- name: ann\n  age: 31\n- name: bob\n  age: 45\n")
		out, err := lq(t, "", "sort", "--by", "-age", "--input-format", "yaml", path)
		require.NoError(t, err)
		assert.Equal(t, []string{"bob", "ann"}, names(t, out))
	})

	t.Run("config file", func(t *testing.T) {
		cfg := writeFile(t, "lq.yaml", "input:\n  format: yaml\n")
		out, err := lq(t, "- 3\n- 1\n", "reverse", "--config", cfg)
		require.NoError(t, err)
		assert.JSONEq(t, `[1, 3]`, out)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := lq(t, `{"a": 1}`, "count")
		require.ErrorIs(t, err, cli.ErrNotArray)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := lq(t, `[1,`, "count")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := lq(t, "", "count", filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestOutput_Indent(t *testing.T) {
	out, err := lq(t, `[{"a": 1}]`, "reverse", "--indent")
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"a\": 1\n  }\n]\n", out)
}
