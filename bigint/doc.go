// Package bigint provides the exact signed-integer arithmetic the convex-hull
// engine needs for orientation and visibility tests: vectors of arbitrary-precision
// integers, a fraction-free (Bareiss) determinant, the generalized N-dimensional
// cross product used to orient a facet, and the GCD-reduce + arbitrary-precision
// square root pair used to convert an exact integer normal into a unit float64
// vector without intermediate IEEE-754 overflow.
//
// The source implementation this package is derived from budgets a fixed-width
// signed integer type per operation (B=30 bits for hull coordinates, 48 bits on
// the lifted paraboloid, and so on — see spec §6) because its host language has
// no native arbitrary-precision integer. Go's math/big.Int already is one, so
// that whole budget table collapses here to a single exact Vec type; the one
// bit constant below is kept only as documentation of the quantisation scale
// (§6), not as an overflow guard.
package bigint

// BitsBase is the quantisation scale reference bit width from spec §6
// (LeastSignedInteger<B>, B = 30). It bounds how finely quant.Quantize maps
// floating-point coordinates onto the integer lattice; it has no bearing on
// overflow since every arithmetic op in this package runs on math/big.Int.
const BitsBase = 30
