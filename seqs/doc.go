/*
Package seqs provides sequence generators for Go 1.23+ iterators (iter.Seq).

  - [Range] yields consecutive integers.
  - [Repeat] yields the same value a fixed number of times.

Both treat a non-positive count as an empty sequence. [Pair] carries two
values side by side, for example the output of a positional zip.
*/
package seqs
