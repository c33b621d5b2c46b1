/*
Package query provides an eager, chainable query wrapper over an in-memory
ordered sequence.

A [Query] owns one backing store. Every transformation ([Query.Where],
[Select], [Query.Distinct], [OrderBy], ...) materializes its result into a new,
independent Query, so pipelines read left to right:

	top := query.OrderByDescending(query.From(scores), func(s int) int { return s }).
		Skip(3).
		ToSlice()

# Ownership

Operations fall into three groups:

  - **Transforms** return a new Query with its own backing store.
  - **Mutations** ([Query.Add], [Query.Insert], [Query.RemoveAt], [Query.Remove])
    change the receiver in place.
  - **Views** share the receiver's storage: [Query.ToList] returns the receiver
    itself and [Query.ToArray] returns the backing slice. [Query.ToSlice] is the
    owned counterpart of ToArray.

[From] takes ownership of the slice it is given; callers must not assume it is
copied.

# Generic operations

Go methods cannot declare type parameters, so operations that change the
element type ([Select], [SelectMany], [GroupBy], [Join], [Zip], [Cast], [OfType],
[OrderBy], ...) are package functions taking the Query as their first argument.

# Ordering

[OrderBy] and its variants return a [Sorted] query. [ThenBy] accepts only a
Sorted query and extends its ordering with a tie-breaking key, re-sorting
eagerly. Sorting is stable: elements with equal keys keep their relative order.

# Equality

Membership operations ([Query.Distinct], [Query.Contains], [Query.Except], join
key matching, ...) compare elements with [compare.Equal], so maps, slices and
structs are matched by content.

# Errors

Failing operations return [ErrIndexOutOfRange], [ErrEmptySequence],
[ErrNotExactlyOne], [ErrInvalidCast] or [ErrOrderViolation], possibly wrapped;
test for them with errors.Is.
*/
package query
