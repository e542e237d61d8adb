// Package ridge maps an (N-1)-simplex ("ridge" — a facet of a facet,
// identified by its sorted vertex-index tuple) to the one or more N-simplex
// facets incident to it, per spec §4.1.
//
// Two flavours are provided, both generic over the facet-handle type F so
// that package hull (which owns the facet representation) can use this
// package without creating an import cycle:
//
//   - Closed[F]: exactly zero, one, or two facets per ridge; used for
//     steady-state hull maintenance. A third Add on the same ridge is a
//     geometry-invariant violation (spec §3: "the ridge index's second-facet
//     slot is either empty or holds a distinct facet from the first") and
//     panics via bigint-style invariant error rather than returning one,
//     since it signals a bug in the caller, not bad input.
//   - Accumulating[F]: an unbounded list of facets per ridge, used during
//     cocone analysis where more than two facets can temporarily share a
//     ridge.
//
// Because facet vertex tuples are pre-sorted by the caller (hull/cocone),
// Key equality is plain tuple equality and Go's built-in array-comparable
// hashing replaces the source implementation's custom commutative-free
// mixer — the idiomatic-Go rendition of "hash-based map from a sorted
// vertex tuple", per spec §4.1.
package ridge
