// Package hull implements the randomized incremental convex-hull engine of
// spec §4.3: exact integer orientation tests (package bigint), a ridge index
// for neighbour bookkeeping (package ridge), and a worker pool that creates
// horizon facets in parallel per inserted point (spec §5).
//
// Facets live in a generational slot map (arena.go) rather than behind raw
// pointers/iterators, per the REDESIGN FLAGS note in spec §9: "store facets
// in a slot map / generational arena; each facet holds its own key, and
// neighbour slots hold keys; removal writes a tombstone (slot free-list)".
//
// Grounded on original_source/src/geometry/core/convex_hull/compute.h,
// facet_connector.h and facet_ortho.h for the exact algorithm and
// orientation-resolution semantics; concurrency-partitioning discipline is
// grounded on the teacher's core package (disjoint-lock-by-partition, not a
// single global lock).
package hull
