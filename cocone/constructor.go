package cocone

import (
	"fmt"

	"github.com/cppd/math-sub006/delaunay"
	"github.com/cppd/math-sub006/quant"
)

// Point is a sample point in its original coordinate frame, the input/output
// currency of this package (as opposed to delaunay.Result's internal
// bigint/lattice representation).
type Point struct {
	Coords []float64
	Index  int
}

// Constructor holds the Delaunay triangulation and derived manifold data
// (poles, heights, radii, cocone flags) for a fixed point set, computed once
// at construction time and reused by Cocone/BoundCocone, grounded on
// cocone.cpp's Impl<N>.
type Constructor struct {
	n          int
	points     []Point
	coords     map[int][]float64
	dr         delaunay.Result
	facets     []*dfacet
	conns      map[int]*vertexConn
	voronoi    [][]float64 // indexed by cell index
	verts      map[int]*manifoldVertex
	cellFacets [][]int
}

// NewConstructor quantises source, derives its Delaunay triangulation and
// computes the full manifold-vertex data set (poles, heights, cocone
// radii, per-facet cocone flags) up front, so that Cocone and BoundCocone
// are pure post-processing over already-computed geometry, per cocone.cpp's
// constructor.
func NewConstructor(source []Point, opts ...Option) (*Constructor, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	if len(source) == 0 {
		return nil, ErrNoManifold
	}
	n := len(source[0].Coords)

	raw := make([][]float64, len(source))
	for i, p := range source {
		raw[i] = p.Coords
	}
	qset, err := quant.Quantize(raw, 0)
	if err != nil {
		return nil, fmt.Errorf("cocone: %w", err)
	}

	dr, err := delaunay.Compute(qset, cfg.delaunayOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cocone: %w", err)
	}

	coords := make(map[int][]float64, len(qset.Points))
	points := make([]Point, len(qset.Points))
	for i, p := range qset.Points {
		c, ok := dr.PointCoords(p.Index)
		if !ok {
			invariantf("NewConstructor: point %d missing from delaunay result", p.Index)
		}
		coords[p.Index] = c
		points[i] = Point{Coords: c, Index: p.Index}
	}

	facets := buildFacets(dr)
	conns := buildConnections(dr, facets)

	voronoi := make([][]float64, len(dr.Cells))
	for i, cell := range dr.Cells {
		v, err := dr.VoronoiVertex(cell)
		if err != nil {
			return nil, fmt.Errorf("cocone: %w", err)
		}
		voronoi[i] = v
	}

	verts, err := computeManifoldData(dr, facets, conns, voronoi, coords)
	if err != nil {
		return nil, err
	}

	cellFacets := buildCellFacets(facets, len(dr.Cells))

	return &Constructor{
		n:          n,
		points:     points,
		coords:     coords,
		dr:         dr,
		facets:     facets,
		conns:      conns,
		voronoi:    voronoi,
		verts:      verts,
		cellFacets: cellFacets,
	}, nil
}

// Cocone extracts the manifold using only the local cocone criterion (no
// rho/alpha interior classification): a facet is initially kept iff all of
// its vertices' per-facet cocone flags are set, per cocone.cpp's cocone().
func (c *Constructor) Cocone() ([][]int32, error) {
	active := coconeFacetFlags(c.facets)
	if allFalse(active) {
		return nil, ErrNoCoconeFacets
	}
	return c.computeFacets(active, alwaysInterior, ErrNoCoconeFacets)
}

// BoundCocone extracts the manifold restricted to the sample's interior
// vertices (Definition 5.4), per cocone.cpp's bound_cocone(rho, alpha).
func (c *Constructor) BoundCocone(rho, alpha float64) ([][]int32, error) {
	if rho <= 0 || rho >= 1 {
		return nil, ErrRhoOutOfRange
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, ErrAlphaOutOfRange
	}

	interior := findInteriorVertices(rho, alpha, c.verts)
	if len(interior) == 0 {
		return nil, ErrNoInteriorVertices
	}
	isInterior := func(v int) bool { return interior[v] }

	active := findInteriorFacets(c.facets, isInterior)
	if allFalse(active) {
		return nil, ErrNoInteriorVertices
	}

	return c.computeFacets(active, isInterior, ErrNoInteriorVertices)
}

// computeFacets is the shared backbone of Cocone/BoundCocone: prune facets
// incident to sharp ridges, then extract the manifold surface from the
// pruned set via the outside-in Delaunay traversal, per cocone.cpp's
// compute_facets.
func (c *Constructor) computeFacets(active []bool, isInterior func(int) bool, emptyErr error) ([][]int32, error) {
	pruneFacetsIncidentToSharpRidges(c.facets, active, c.coords, isInterior)
	if allFalse(active) {
		return nil, emptyErr
	}

	kept := extractManifold(c.facets, active, c.cellFacets, len(c.dr.Cells))
	if allFalse(kept) {
		return nil, ErrNoManifold
	}

	return emitFacets(c.facets, kept), nil
}

func emitFacets(facets []*dfacet, kept []bool) [][]int32 {
	var out [][]int32
	for i, f := range facets {
		if !kept[i] {
			continue
		}
		verts := make([]int32, len(f.verts))
		for j, v := range f.verts {
			verts[j] = int32(v)
		}
		out = append(out, verts)
	}
	return out
}

// Points returns the quantised, deduplicated point set's coordinates in
// their original frame, in the same order as Normals.
func (c *Constructor) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// DelaunayObjects exposes the underlying Delaunay triangulation, for callers
// that need the full cell complex rather than just the extracted manifold.
func (c *Constructor) DelaunayObjects() delaunay.Result {
	return c.dr
}

// Normals returns each point's positive-pole unit vector, in the same order
// as Points. A point with no incident Delaunay facets (deduplicated out of
// the triangulation) reports a zero vector.
func (c *Constructor) Normals() [][]float64 {
	out := make([][]float64, len(c.points))
	for i, p := range c.points {
		mv, ok := c.verts[p.Index]
		if !ok {
			out[i] = make([]float64, c.n)
			continue
		}
		out[i] = mv.positiveNorm
	}
	return out
}
