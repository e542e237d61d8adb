package quant

import "github.com/cppd/math-sub006/bigint"

// Point is a single quantised lattice point carrying the index of the
// original floating-point point it was derived from (spec §3: "Each
// quantised point carries an index into the original input").
type Point struct {
	Coords bigint.Vec
	Index  int
}

// Set is a deduplicated, randomly-permuted collection of quantised points
// sharing a common dimension N.
//
// Lo and Scale record the affine map Quantize applied
// (quantised = round((original-Lo)*Scale)), so any derived float64
// quantity expressed in quantised-lattice units (a Voronoi vertex
// position, a reconstructed surface point) can be mapped back into the
// caller's original coordinate frame with ToOriginal.
type Set struct {
	Points []Point
	N      int
	Lo     []float64
	Scale  float64
}

// Len returns the number of points in the set.
func (s Set) Len() int { return len(s.Points) }

// ToOriginal maps a point expressed in quantised-lattice coordinates back
// into the original input's coordinate frame. v must have length N.
func (s Set) ToOriginal(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = c/s.Scale + s.Lo[i]
	}
	return out
}
