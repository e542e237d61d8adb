package cocone

import (
	"sort"
	"strconv"

	"github.com/cppd/math-sub006/bigint"
	"github.com/cppd/math-sub006/delaunay"
	"github.com/cppd/math-sub006/ridge"
)

// dfacet is a Delaunay facet: the ridge shared between one or two Delaunay
// cells, the manifold-reconstruction unit of spec §4.5 ("Manifold facet").
// cells[1] == -1 marks a one-sided (convex-hull-boundary) facet.
type dfacet struct {
	verts    []int     // N global point indices, sorted ascending
	cells    [2]int    // incident cell indices; cells[1] == -1 if one-sided
	oppVerts [2]int    // the vertex of cells[i] opposite this facet
	ortho    []float64 // outward unit normal, populated only when one-sided
	cocone   []bool    // len(verts); cocone[i] mirrors ManifoldFacet.cocone_vertex[i]
}

// ridgeKeyExcluding returns the ridge.Key for this facet's (N-1)-vertex
// sub-ridge obtained by dropping vertex slot skip, used by sharp-ridge
// pruning. verts is already sorted, so the result only needs re-sorting
// relative to itself, which dropping one element from a sorted slice never
// requires.
func (f *dfacet) ridgeKeyExcluding(skip int) ridge.Key {
	verts := make([]int32, 0, len(f.verts)-1)
	for i, v := range f.verts {
		if i == skip {
			continue
		}
		verts = append(verts, int32(v))
	}
	return ridge.NewKey(verts)
}

func verticesKey(verts []int) string {
	b := make([]byte, 0, len(verts)*6)
	for _, v := range verts {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}
	return string(b)
}

// buildFacets derives one dfacet per Delaunay ridge from dr.Cells: each cell
// contributes N+1 facets (drop one vertex each), and a facet shared by two
// cells is deduplicated into a single two-sided record.
func buildFacets(dr delaunay.Result) []*dfacet {
	idx := make(map[string]*dfacet)
	order := make([]string, 0)

	for cellIdx, cell := range dr.Cells {
		for skip, opp := range cell.Verts {
			verts := make([]int, 0, len(cell.Verts)-1)
			for i, v := range cell.Verts {
				if i != skip {
					verts = append(verts, v)
				}
			}
			sort.Ints(verts)
			k := verticesKey(verts)
			f, ok := idx[k]
			if !ok {
				f = &dfacet{verts: verts, cells: [2]int{-1, -1}, oppVerts: [2]int{-1, -1}}
				idx[k] = f
				order = append(order, k)
			}
			switch {
			case f.cells[0] == -1:
				f.cells[0] = cellIdx
				f.oppVerts[0] = opp
			case f.cells[1] == -1:
				f.cells[1] = cellIdx
				f.oppVerts[1] = opp
			default:
				invariantf("ridge %v incident to more than two Delaunay cells", verts)
			}
		}
	}

	facets := make([]*dfacet, len(order))
	for i, k := range order {
		f := idx[k]
		f.cocone = make([]bool, len(f.verts))
		if f.cells[1] == -1 {
			f.ortho = outwardOrtho(dr, f.verts, f.oppVerts[0])
		}
		facets[i] = f
	}
	return facets
}

// outwardOrtho computes the exact orthogonal complement of the simplex
// spanned by pts[verts], oriented away from pts[direction] (the Delaunay
// cell's opposite vertex), converting to float64 only after the sign
// resolution — directions, unlike positions, are scale-invariant, so no
// inverse quantisation map is needed (cf. delaunay's PointCoords).
//
// Grounded on hull.resolveOrtho's tri-state branch, minus the
// already-oriented-neighbour tie-break: a zero dot product here means the
// opposite vertex of a Delaunay cell lies exactly on one of the cell's own
// facet hyperplanes, i.e. a degenerate simplex hull/delaunay should already
// have rejected, so it is treated as an invariant violation, not resolved.
func outwardOrtho(dr delaunay.Result, verts []int, direction int) []float64 {
	pts := make([]bigint.Vec, len(verts))
	for i, v := range verts {
		p, ok := dr.PointBigint(v)
		if !ok {
			invariantf("outwardOrtho: unknown point %d", v)
		}
		pts[i] = p
	}
	dirPt, ok := dr.PointBigint(direction)
	if !ok {
		invariantf("outwardOrtho: unknown direction point %d", direction)
	}

	base := pts[0]
	edges := make([]bigint.Vec, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		e, err := bigint.Sub(pts[i], base)
		if err != nil {
			invariantf("outwardOrtho: %v", err)
		}
		edges[i-1] = e
	}
	ortho := bigint.Ortho(edges)

	toDir, err := bigint.Sub(dirPt, base)
	if err != nil {
		invariantf("outwardOrtho: %v", err)
	}
	d, err := bigint.Dot(ortho, toDir)
	if err != nil {
		invariantf("outwardOrtho: %v", err)
	}
	switch d.Sign() {
	case 0:
		invariantf("outwardOrtho: direction point %d lies exactly on facet %v's plane", direction, verts)
	case 1:
		for _, x := range ortho {
			x.Neg(x)
		}
	}
	return bigint.ToUnitFloat64(ortho)
}
