// Package quant maps floating-point input points onto a deduplicated,
// randomly-shuffled lattice of exact integer points, reversibly indexed back
// to the caller's original point order. This is the leaf "Integer point
// quantisation" component of spec §2: every downstream package (ridge, hull,
// delaunay, cocone) operates exclusively on the Set this package produces.
package quant
