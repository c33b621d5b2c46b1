package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"linq/compare"
	"linq/internal/jsonpath"
	"linq/query"
)

// match holds the optional element filter shared by where, first, last and count.
type match struct {
	path string
	eq   string
	not  bool
}

func (m *match) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.path, "path", "", "path of the value to test (default: the element)")
	cmd.Flags().StringVar(&m.eq, "eq", "", "match elements whose value equals this JSON value")
	cmd.Flags().BoolVar(&m.not, "not", false, "invert the match")
}

func (m *match) active() bool {
	return m.path != "" || m.eq != "" || m.not
}

// predicate tests the value at path for equality with eq, or for truthiness
// when eq is empty.
func (m *match) predicate(errp *error) func(any) bool {
	key := jsonpath.Key(m.path, errp)
	var pred func(any) bool
	if m.eq != "" {
		want := jsonpath.ParseValue(m.eq)
		pred = func(v any) bool { return compare.Equal(key(v), want) }
	} else {
		pred = func(v any) bool { return jsonpath.Truthy(key(v)) }
	}
	if m.not {
		return compare.Negate(pred)
	}
	return pred
}

func (m *match) predicates(errp *error) []func(any) bool {
	if !m.active() {
		return nil
	}
	return []func(any) bool{m.predicate(errp)}
}

func (a *app) comparer() compare.Comparer[any] {
	if a.cfg.Sort.Natural {
		return jsonpath.CompareNatural
	}
	return jsonpath.Compare
}

func (a *app) distinctCmd() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "distinct [file]",
		Short: "Keep the first occurrence of each element (or of each --by key)",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&by, "by", "", "path of the deduplication key")
	cmd.RunE = a.run("distinct", 0, func(_ []string, q *query.Query[any]) (any, error) {
		if by == "" {
			return q.Distinct(), nil
		}
		var err error
		res := query.DistinctBy(q, jsonpath.Key(by, &err))
		return res, err
	})
	return cmd
}

func (a *app) sortCmd() *cobra.Command {
	var by []string
	cmd := &cobra.Command{
		Use:   "sort --by path [--by -path ...] [file]",
		Short: "Stable sort by one or more keys; prefix a key with - for descending",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringArrayVar(&by, "by", nil, "sort key path, repeatable")
	_ = cmd.MarkFlagRequired("by")
	cmd.RunE = a.run("sort", 0, func(_ []string, q *query.Query[any]) (any, error) {
		var (
			err    error
			cmp    = a.comparer()
			sorted *query.Sorted[int]
		)
		// Keys are resolved once per element; the sort orders element positions.
		positions := query.Range(0, q.Len())
		for i, s := range by {
			sel := jsonpath.ParseSelector(s)
			keys := query.Select(q, jsonpath.Key(sel.Path, &err)).ToArray()
			key := func(p int) any { return keys[p] }
			switch {
			case i == 0 && sel.Descending:
				sorted = query.OrderByDescendingFunc(positions, key, cmp)
			case i == 0:
				sorted = query.OrderByFunc(positions, key, cmp)
			case sel.Descending:
				sorted = query.ThenByDescendingFunc(sorted, key, cmp)
			default:
				sorted = query.ThenByFunc(sorted, key, cmp)
			}
			a.log.Debug().Str("path", sel.Path).Bool("descending", sel.Descending).Int("level", i).Msg("sort key")
		}
		if err != nil {
			return nil, err
		}
		items := q.ToArray()
		return query.Select(sorted.Query, func(p int) any { return items[p] }), nil
	})
	return cmd
}

func (a *app) groupCmd() *cobra.Command {
	var by, sel string
	cmd := &cobra.Command{
		Use:   "group --by path [--select path] [file]",
		Short: "Group elements by key, in first-seen key order",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&by, "by", "", "path of the grouping key")
	cmd.Flags().StringVar(&sel, "select", "", "path of the value kept in each group (default: the element)")
	_ = cmd.MarkFlagRequired("by")
	cmd.RunE = a.run("group", 0, func(_ []string, q *query.Query[any]) (any, error) {
		var err error
		groups := query.GroupByFunc(q, jsonpath.Key(by, &err), jsonpath.Key(sel, &err)).Groups()
		res := query.Select(groups, func(g *query.Group[any, any]) any {
			return map[string]any{"key": g.Key, "items": g.Items.ToArray()}
		})
		return res, err
	})
	return cmd
}

func (a *app) selectCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "select --path path [file]",
		Short: "Project every element to the value at path",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&path, "path", "", "path of the projected value")
	_ = cmd.MarkFlagRequired("path")
	cmd.RunE = a.run("select", 0, func(_ []string, q *query.Query[any]) (any, error) {
		var err error
		res := query.Select(q, jsonpath.Key(path, &err))
		return res, err
	})
	return cmd
}

func (a *app) whereCmd() *cobra.Command {
	var m match
	cmd := &cobra.Command{
		Use:   "where [--path path] [--eq value] [--not] [file]",
		Short: "Keep the elements that match",
		Args:  cobra.MaximumNArgs(1),
	}
	m.register(cmd)
	cmd.RunE = a.run("where", 0, func(_ []string, q *query.Query[any]) (any, error) {
		var err error
		res := q.Where(m.predicate(&err))
		return res, err
	})
	return cmd
}

func (a *app) elementCmd(name string) *cobra.Command {
	var m match
	cmd := &cobra.Command{
		Use:   name + " [--path path] [--eq value] [--not] [file]",
		Short: "Print the " + name + " matching element",
		Args:  cobra.MaximumNArgs(1),
	}
	m.register(cmd)
	cmd.RunE = a.run(name, 0, func(_ []string, q *query.Query[any]) (any, error) {
		var err error
		preds := m.predicates(&err)
		var (
			v    any
			qerr error
		)
		if name == "first" {
			v, qerr = q.First(preds...)
		} else {
			v, qerr = q.Last(preds...)
		}
		return v, errors.Join(err, qerr)
	})
	return cmd
}

func (a *app) countCmd() *cobra.Command {
	var m match
	cmd := &cobra.Command{
		Use:   "count [--path path] [--eq value] [--not] [file]",
		Short: "Count the (matching) elements",
		Args:  cobra.MaximumNArgs(1),
	}
	m.register(cmd)
	cmd.RunE = a.run("count", 0, func(_ []string, q *query.Query[any]) (any, error) {
		var err error
		n := q.Count(m.predicates(&err)...)
		return n, err
	})
	return cmd
}

func (a *app) sliceCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " n [file]",
		Short: "Keep the first n elements",
		Args:  cobra.RangeArgs(1, 2),
	}
	if name == "skip" {
		cmd.Short = "Drop the first n elements"
	}
	cmd.RunE = a.run(name, 1, func(args []string, q *query.Query[any]) (any, error) {
		n, err := parseCount(args[0])
		if err != nil {
			return nil, err
		}
		if name == "skip" {
			return q.Skip(n), nil
		}
		return q.Take(n), nil
	})
	return cmd
}

func (a *app) reverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [file]",
		Short: "Reverse element order",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run("reverse", 0, func(_ []string, q *query.Query[any]) (any, error) {
			return q.Reverse(), nil
		}),
	}
}

func (a *app) kindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kind null|bool|number|string|array|object [file]",
		Short: "Keep the elements of one JSON kind",
		Args:  cobra.RangeArgs(1, 2),
		RunE: a.run("kind", 1, func(args []string, q *query.Query[any]) (any, error) {
			k, err := compare.ParseKind(args[0])
			if err != nil {
				return nil, err
			}
			return q.OfKind(k), nil
		}),
	}
}

func (a *app) numericCmd(name string) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   name + " [--path path] [file]",
		Short: "Compute the " + name + " of the numeric values at path",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&path, "path", "", "path of the value (default: the element)")
	cmd.RunE = a.run(name, 0, func(_ []string, q *query.Query[any]) (any, error) {
		var err error
		nums := query.OfType[float64](query.Select(q, jsonpath.Key(path, &err)))
		if err != nil {
			return nil, err
		}
		a.log.Debug().Int("numbers", nums.Len()).Int("skipped", q.Len()-nums.Len()).Msg("numeric values")
		switch name {
		case "sum":
			return query.Sum(nums), nil
		case "min":
			return query.Min(nums)
		case "max":
			return query.Max(nums)
		default:
			return query.Average(nums)
		}
	})
	return cmd
}

func (a *app) setCmd(name string) *cobra.Command {
	var with string
	cmd := &cobra.Command{
		Use:   name + " --with file [file]",
		Short: fmt.Sprintf("Compute the %s of the input and another array", name),
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&with, "with", "", "file holding the other array")
	_ = cmd.MarkFlagRequired("with")
	cmd.RunE = a.run(name, 0, func(_ []string, q *query.Query[any]) (any, error) {
		other, err := a.readInput(with)
		if err != nil {
			return nil, err
		}
		switch name {
		case "union":
			return q.Union(other), nil
		case "except":
			return q.Except(other), nil
		default:
			return q.Intersect(other), nil
		}
	})
	return cmd
}
