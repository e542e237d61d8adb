package delaunay

import (
	"github.com/cppd/math-sub006/bigint"
	"github.com/cppd/math-sub006/hull"
	"github.com/cppd/math-sub006/quant"
)

// Cell is one simplex of the Delaunay triangulation: N+1 original point
// indices (quant.Point.Index).
type Cell struct {
	Verts []int
}

// Result is the output of Compute.
type Result struct {
	N     int
	Cells []Cell

	points map[int]bigint.Vec // original index -> coords, for VoronoiVertex
	lo     []float64          // quant.Set.Lo, to map VoronoiVertex back to the input frame
	scale  float64            // quant.Set.Scale
}

// PointBigint returns the exact lattice-frame coordinates of a point index,
// for callers (cocone's outward-ortho computation) that need exact
// arithmetic rather than the unscaled float64 frame PointCoords returns.
func (r Result) PointBigint(idx int) (bigint.Vec, bool) {
	c, ok := r.points[idx]
	return c, ok
}

// PointCoords returns the original-frame float64 coordinates of a point
// index referenced by a Cell, or ok=false if idx is not one of the points
// Compute was called with. Exported for cocone, which needs the input
// points in the same frame VoronoiVertex already returns.
func (r Result) PointCoords(idx int) ([]float64, bool) {
	c, ok := r.points[idx]
	if !ok {
		return nil, false
	}
	f := bigint.ToFloat64(c)
	if r.scale != 0 {
		for i, v := range f {
			f[i] = v/r.scale + r.lo[i]
		}
	}
	return f, true
}

// Compute derives the Delaunay triangulation of points by lifting onto the
// paraboloid and filtering the lower envelope of the resulting hull (spec
// §4.4). Returns hull's sentinel errors unchanged when the lift degenerates
// into one of hull's own error conditions (e.g. ErrSimplexNotFound for
// collinear/coplanar input).
func Compute(points quant.Set, opts ...Option) (Result, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	coords := make(map[int]bigint.Vec, len(points.Points))
	for _, p := range points.Points {
		coords[p.Index] = p.Coords
	}

	if len(points.Points) < points.N+1 {
		return Result{}, hull.ErrTooFewPoints
	}
	if len(points.Points) == points.N+1 {
		// The minimal simplex needs no hull computation: it is, trivially,
		// the single cell spanning every point.
		verts := make([]int, len(points.Points))
		for i, p := range points.Points {
			verts[i] = p.Index
		}
		return Result{N: points.N, Cells: []Cell{{Verts: verts}}, points: coords, lo: points.Lo, scale: points.Scale}, nil
	}

	lifted := liftParaboloid(points)
	hr, err := hull.Compute(lifted, cfg.hullOptions()...)
	if err != nil {
		return Result{}, err
	}

	var cells []Cell
	for _, f := range hr.Facets {
		if f.Ortho[len(f.Ortho)-1].Sign() < 0 {
			cells = append(cells, Cell{Verts: f.Verts})
		}
	}

	return Result{N: points.N, Cells: cells, points: coords, lo: points.Lo, scale: points.Scale}, nil
}
