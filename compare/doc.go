/*
Package compare provides the ordering and equality primitives used by the query
engine.

  - **Ordering**: [Comparer] functions built from key selectors with [KeyComparer]
    and [KeyComparerFunc], combined with [Compose] or an explicit [Chain].
  - **Equality**: [Equal] compares values structurally, so two maps or slices with
    the same contents are equal even when they are distinct allocations.
  - **Kinds**: [KindOf] classifies a value into a closed set of [Kind] tags.

Comparers follow the convention of [cmp.Compare]: negative when a < b, zero when
equal, positive when a > b.
*/
package compare
