package delaunay

import (
	"fmt"

	"github.com/cppd/math-sub006/bigint"
	"github.com/cppd/math-sub006/matrix"
	"github.com/cppd/math-sub006/matrix/ops"
)

// VoronoiVertex returns the circumcenter of cell's N+1 points: the point
// equidistant from all of them, i.e. the dual Voronoi vertex. It is
// computed on demand rather than eagerly for every cell, since not every
// caller needs it (spec §4.4 describes it as a per-cell derived quantity).
//
// Grounded on the teacher's matrix/ops.LU via the adapted ops.Solve: for
// base point p0 = cell.Verts[0] and each other vertex p_i, the system row
// (p_i - p0)·x = (|p_i|^2 - |p0|^2)/2 is linear in the unknown vertex x.
func (r Result) VoronoiVertex(cell Cell) ([]float64, error) {
	n := r.N
	if len(cell.Verts) != n+1 {
		invariantf("VoronoiVertex: cell has %d vertices, want %d for N=%d", len(cell.Verts), n+1, n)
	}

	base, ok := r.points[cell.Verts[0]]
	if !ok {
		invariantf("VoronoiVertex: unknown point index %d", cell.Verts[0])
	}
	baseF := bigint.ToFloat64(base)
	baseSq := sumSquares(baseF)

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("delaunay: %w", err)
	}
	b := make([]float64, n)
	for i := 1; i <= n; i++ {
		p, ok := r.points[cell.Verts[i]]
		if !ok {
			invariantf("VoronoiVertex: unknown point index %d", cell.Verts[i])
		}
		pf := bigint.ToFloat64(p)
		for j := 0; j < n; j++ {
			if err := a.Set(i-1, j, pf[j]-baseF[j]); err != nil {
				return nil, fmt.Errorf("delaunay: %w", err)
			}
		}
		b[i-1] = (sumSquares(pf) - baseSq) / 2
	}

	x, err := ops.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("delaunay: %w: %w", ErrVoronoiUndefined, err)
	}
	if r.scale != 0 {
		for i, c := range x {
			x[i] = c/r.scale + r.lo[i]
		}
	}
	return x, nil
}

func sumSquares(v []float64) float64 {
	var s float64
	for _, c := range v {
		s += c * c
	}
	return s
}
