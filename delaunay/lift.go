package delaunay

import (
	"github.com/cppd/math-sub006/bigint"
	"github.com/cppd/math-sub006/quant"
)

// liftParaboloid maps each point x in R^N onto (x, |x|^2) in R^(N+1). The
// Delaunay triangulation of the original points is exactly the projection
// of the lower envelope of the convex hull of the lifted points (spec
// §4.4) — a classical reduction that lets this package reuse package
// hull's exact-arithmetic engine unchanged rather than reimplementing
// incircle/orientation predicates from scratch.
func liftParaboloid(points quant.Set) quant.Set {
	out := make([]quant.Point, len(points.Points))
	for i, p := range points.Points {
		lifted := append(p.Coords.Clone(), bigint.DotSquared(p.Coords))
		out[i] = quant.Point{Coords: lifted, Index: p.Index}
	}
	return quant.Set{Points: out, N: points.N + 1}
}
