package cocone

import (
	"math"
	"sort"

	"github.com/cppd/math-sub006/delaunay"
)

// cosOpeningAngle is cos(3*pi/8): the cocone of a vertex is the complement
// of the open double cone of half-opening 3*pi/8 about its positive pole.
const cosOpeningAngle = 0.38268343236508977172845998403039886676134456248563

const limitCosinePAPole = 0.99

const maxVoronoiEdgeRadius = math.MaxFloat64

// manifoldVertex is "Manifold vertex" (spec §3): a sample point's positive
// pole, Voronoi-cell height, cocone radius and cocone-neighbour list.
type manifoldVertex struct {
	positiveNorm    []float64
	height          float64
	radius          float64
	coconeNeighbors []int
}

type facetSlot struct {
	facetIdx int
	slot     int
}

type vertexConn struct {
	facets []facetSlot
	cells  []int
}

// buildConnections inverts dr.Cells/facets into a per-global-vertex index of
// incident facets (with the vertex's slot in each) and incident cells,
// grounded on structure.cpp's vertex_connections.
func buildConnections(dr delaunay.Result, facets []*dfacet) map[int]*vertexConn {
	conns := make(map[int]*vertexConn)
	get := func(v int) *vertexConn {
		c, ok := conns[v]
		if !ok {
			c = &vertexConn{}
			conns[v] = c
		}
		return c
	}
	for fi, f := range facets {
		for slot, v := range f.verts {
			c := get(v)
			c.facets = append(c.facets, facetSlot{facetIdx: fi, slot: slot})
		}
	}
	for ci, cell := range dr.Cells {
		for _, v := range cell.Verts {
			c := get(v)
			c.cells = append(c.cells, ci)
		}
	}
	return conns
}

// computeManifoldData fills in each facet's per-vertex cocone flag and
// returns the per-vertex pole/height/radius/neighbours, grounded on
// structure.cpp's find_manifold_data. Points whose connections are empty
// (quant deduplicated them out of the hull/Delaunay pass) are skipped, as
// the original does for "not all points are Delaunay vertices".
func computeManifoldData(
	dr delaunay.Result,
	facets []*dfacet,
	conns map[int]*vertexConn,
	voronoi [][]float64,
	coords map[int][]float64,
) (map[int]*manifoldVertex, error) {
	verts := make(map[int]*manifoldVertex)

	for v, conn := range conns {
		if len(conn.facets) == 0 || len(conn.cells) == 0 {
			continue
		}
		p := coords[v]

		pos, err := positivePole(facets, conn, voronoi, p)
		if err != nil {
			return nil, err
		}

		height, err := voronoiHeight(conn, voronoi, p, pos)
		if err != nil {
			return nil, err
		}

		radius, err := coconeFacetsAndRadius(facets, conn, voronoi, p, pos, true)
		if err != nil {
			return nil, err
		}

		verts[v] = &manifoldVertex{positiveNorm: pos, height: height, radius: radius}
	}

	computeNeighbors(facets, conns, verts)

	return verts, nil
}

// positivePole implements Definition 4.1 (Poles): for an unbounded (hull
// boundary) vertex, the sum of outward orthos of its one-sided incident
// facets; otherwise the direction to its farthest Voronoi vertex.
func positivePole(facets []*dfacet, conn *vertexConn, voronoi [][]float64, p []float64) ([]float64, error) {
	unbounded := false
	for _, fs := range conn.facets {
		if facets[fs.facetIdx].cells[1] == -1 {
			unbounded = true
			break
		}
	}

	var pos []float64
	if unbounded {
		sum := make([]float64, len(p))
		for _, fs := range conn.facets {
			f := facets[fs.facetIdx]
			if f.cells[1] == -1 {
				for i, c := range f.ortho {
					sum[i] += c
				}
			}
		}
		pos = normalize(sum)
	} else {
		maxDist := -1.0
		var maxVec []float64
		for _, ci := range conn.cells {
			vp := sub(voronoi[ci], p)
			d := dot(vp, vp)
			if d > maxDist {
				maxDist = d
				maxVec = vp
			}
		}
		pos = normalize(maxVec)
	}

	if !finiteVec(pos) {
		return nil, ErrPositivePoleNotFinite
	}
	return pos, nil
}

// voronoiHeight implements Definition 5.3: the distance to the farthest
// Voronoi vertex strictly on the negative-pole side of the tangent plane.
func voronoiHeight(conn *vertexConn, voronoi [][]float64, p, pole []float64) (float64, error) {
	maxDist := -1.0
	found := false
	for _, ci := range conn.cells {
		vp := sub(voronoi[ci], p)
		if dot(vp, pole) >= 0 {
			continue
		}
		d := dot(vp, vp)
		if d > maxDist {
			maxDist = d
			found = true
		}
	}
	if !found {
		return 0, ErrNegativePoleNotFound
	}
	length := math.Sqrt(maxDist)
	if math.IsInf(length, 0) || math.IsNaN(length) {
		return 0, ErrNegativePoleNotFinite
	}
	return length, nil
}

func voronoiEdgeIntersectsCocone(cosA, cosB float64) bool {
	if math.Abs(cosA) < cosOpeningAngle || math.Abs(cosB) < cosOpeningAngle {
		return true
	}
	if cosA < 0 && cosB > 0 {
		return true
	}
	if cosA > 0 && cosB < 0 {
		return true
	}
	return false
}

func coconeInsideOrEqual(cosines ...float64) bool {
	for _, c := range cosines {
		if math.Abs(c) > cosOpeningAngle {
			return false
		}
	}
	return true
}

// intersectConeMaxDistance solves for the farthest intersection of the ray
// pa + t*ab (t >= 0) with the double-cone boundary around axis, per
// functions.h's quadratic derivation. ok is false if no non-negative root
// exists.
func intersectConeMaxDistance(axis, pa, ab []float64) (float64, bool) {
	nAB := dot(axis, ab)
	aN := dot(pa, axis)
	sqA := dot(pa, pa)
	sqAB := dot(ab, ab)
	aAB := dot(pa, ab)
	cos2 := cosOpeningAngle * cosOpeningAngle

	a := nAB*nAB - cos2*sqAB
	b := 2 * (aN*nAB - aAB*cos2)
	c := aN*aN - sqA*cos2

	t1, t2, ok := quadraticRoots(a, b, c)
	if !ok {
		return 0, false
	}
	t1ok := t1 >= 0 && !math.IsInf(t1, 0)
	t2ok := t2 >= 0 && !math.IsInf(t2, 0)
	switch {
	case !t1ok && !t2ok:
		return 0, false
	case t1ok && !t2ok:
		return norm(addScaled(pa, ab, t1)), true
	case !t1ok && t2ok:
		return norm(addScaled(pa, ab, t2)), true
	default:
		d1 := norm(addScaled(pa, ab, t1))
		d2 := norm(addScaled(pa, ab, t2))
		if d1 > d2 {
			return d1, true
		}
		return d2, true
	}
}

// voronoiEdgeRadius implements the radius half of Definition 5.3 for one
// incident facet. The "PA close to positive pole" degeneracy is a fatal
// error per the Open Question decision recorded in DESIGN.md, rather than
// the tolerant "close to vertex" special case the quadratic's literal
// derivation would otherwise admit.
func voronoiEdgeRadius(f *dfacet, voronoi [][]float64, pole, pa []float64, paLen, pbLen, cosA, cosB float64) (float64, error) {
	oneSided := f.cells[1] == -1

	if oneSided && coconeInsideOrEqual(cosB) {
		return maxVoronoiEdgeRadius, nil
	}
	if !oneSided && coconeInsideOrEqual(cosA, cosB) {
		return math.Max(paLen, pbLen), nil
	}

	var ab []float64
	if oneSided {
		ab = f.ortho
	} else {
		ab = sub(voronoi[f.cells[1]], voronoi[f.cells[0]])
	}

	maxDist, ok := intersectConeMaxDistance(pole, pa, ab)
	if !ok {
		if math.Abs(cosA) > limitCosinePAPole {
			return 0, ErrIntersectionNotFinite
		}
		return 0, ErrIntersectionNotFound
	}
	if math.IsInf(maxDist, 0) || math.IsNaN(maxDist) {
		return 0, ErrIntersectionNotFinite
	}
	if coconeInsideOrEqual(cosA) {
		return math.Max(paLen, maxDist), nil
	}
	return maxDist, nil
}

// coconeFacetsAndRadius implements cocone_facets_and_voronoi_radius_impl:
// one pass over a vertex's incident facets, setting each facet's per-vertex
// cocone flag and, when findRadius, accumulating the vertex's cocone
// radius.
func coconeFacetsAndRadius(facets []*dfacet, conn *vertexConn, voronoi [][]float64, p, pole []float64, findRadius bool) (float64, error) {
	var radius float64

	for _, fs := range conn.facets {
		f := facets[fs.facetIdx]
		oneSided := f.cells[1] == -1

		pa := sub(voronoi[f.cells[0]], p)
		paLen := norm(pa)
		cosA := dot(pole, pa) / paLen

		var pbLen, cosB float64
		if oneSided {
			cosB = dot(pole, f.ortho)
		} else {
			pb := sub(voronoi[f.cells[1]], p)
			pbLen = norm(pb)
			cosB = dot(pole, pb) / pbLen
		}

		if !voronoiEdgeIntersectsCocone(cosA, cosB) {
			continue
		}
		f.cocone[fs.slot] = true

		if !findRadius || radius == maxVoronoiEdgeRadius {
			continue
		}
		edgeRadius, err := voronoiEdgeRadius(f, voronoi, pole, pa, paLen, pbLen, cosA, cosB)
		if err != nil {
			return 0, err
		}
		if edgeRadius > radius {
			radius = edgeRadius
		}
	}

	return radius, nil
}

// computeNeighbors implements cocone_neighbors: v's cocone neighbours are
// the vertices of its incident facets whose own per-facet cocone flag is
// set, sorted and deduplicated.
func computeNeighbors(facets []*dfacet, conns map[int]*vertexConn, verts map[int]*manifoldVertex) {
	for v, conn := range conns {
		mv, ok := verts[v]
		if !ok {
			continue
		}
		seen := make(map[int]bool)
		for _, fs := range conn.facets {
			f := facets[fs.facetIdx]
			for i, other := range f.verts {
				if i == fs.slot || !f.cocone[i] || seen[other] {
					continue
				}
				seen[other] = true
				mv.coconeNeighbors = append(mv.coconeNeighbors, other)
			}
		}
		sort.Ints(mv.coconeNeighbors)
	}
}

// coconeFacetFlags implements find_cocone_facets/cocone_facet: a facet is a
// cocone facet (Cocone() mode's initial set) iff all of its per-vertex
// cocone flags are set.
func coconeFacetFlags(facets []*dfacet) []bool {
	res := make([]bool, len(facets))
	for i, f := range facets {
		all := true
		for _, b := range f.cocone {
			if !b {
				all = false
				break
			}
		}
		res[i] = all
	}
	return res
}
