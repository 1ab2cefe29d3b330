// Package idmap provides a bijective interning table that assigns dense,
// stable, zero-based integer ids to arbitrary comparable values.
//
// What
//
//   - Insert assigns the next sequential id on first sight of a value and
//     returns the existing id on every later insert.
//   - InsertResult reports, in addition to the id, whether the value was
//     already contained. unionfind relies on this to distinguish "create
//     node" from "re-link node".
//   - ID and Value are O(1) lookups in both directions.
//
// Invariants
//
//   - Ids follow first-insertion order and are contiguous from 0.
//   - An id never changes once assigned; there is no deletion.
//   - Len equals the number of distinct values ever inserted.
//
// Value returns (zero, false) for every out-of-range id, negative ids
// included, instead of panicking.
//
// Complexity (amortized):
//
//   - Insert, ID, Value, ContainsValue, ContainsID: O(1)
//   - Memory: O(N) for the forward map and the backward slice.
//
// A Map is not safe for concurrent mutation.
package idmap
