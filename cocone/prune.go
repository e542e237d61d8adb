package cocone

import (
	"math"

	"github.com/cppd/math-sub006/ridge"
)

// ridgeAssoc tracks, for one (N-1)-vertex ridge of the current cocone-facet
// set, the facets incident to it together with each facet's vertex that is
// NOT part of the ridge (its "opposite point"), mirroring RidgeFacets.
type ridgeAssoc struct {
	verts     []int
	facetIdxs []int
	oppVerts  []int
}

// addToRidges implements the 2-arg add_to_ridges: for every (N-1)-subset of
// f's vertices, record f (with its opposite vertex) under that ridge's key.
func addToRidges(facets []*dfacet, fi int, ridges map[ridge.Key]*ridgeAssoc) {
	f := facets[fi]
	for skip, opp := range f.verts {
		k := f.ridgeKeyExcluding(skip)
		ra, ok := ridges[k]
		if !ok {
			verts := make([]int, 0, len(f.verts)-1)
			for i, v := range f.verts {
				if i != skip {
					verts = append(verts, v)
				}
			}
			ra = &ridgeAssoc{verts: verts}
			ridges[k] = ra
		}
		ra.facetIdxs = append(ra.facetIdxs, fi)
		ra.oppVerts = append(ra.oppVerts, opp)
	}
}

// addOtherRidges implements the 3-arg add_to_ridges used during pruning:
// add f's ridges to the working set, except the ridge keyed by excludeSkip
// (the one currently being processed, which must not be revisited).
func addOtherRidges(facets []*dfacet, fi, excludeSkip int, ridges map[ridge.Key]*ridgeAssoc) {
	f := facets[fi]
	for skip, opp := range f.verts {
		if skip == excludeSkip {
			continue
		}
		k := f.ridgeKeyExcluding(skip)
		ra, ok := ridges[k]
		if !ok {
			verts := make([]int, 0, len(f.verts)-1)
			for i, v := range f.verts {
				if i != skip {
					verts = append(verts, v)
				}
			}
			ra = &ridgeAssoc{verts: verts}
			ridges[k] = ra
		}
		ra.facetIdxs = append(ra.facetIdxs, fi)
		ra.oppVerts = append(ra.oppVerts, opp)
	}
}

// ridgeComplement is an orthonormal 2D basis of the orthogonal complement of
// a ridge's affine hull within the ambient facet hyperplane, anchored at the
// ridge's first vertex, grounded on prune_facets.cpp's RidgeComplement.
type ridgeComplement struct {
	base []float64
	e0   []float64
	e1   []float64
}

// buildRidgeComplement computes e0/e1 from the ridge's own edge vectors plus
// one auxiliary point not on the ridge (a facet's opposite vertex), the same
// two-step ortho construction RidgeComplement uses: e0 is orthogonal to the
// ridge and to the auxiliary edge, e1 is orthogonal to the ridge and to e0.
func buildRidgeComplement(points map[int][]float64, ridgeVerts []int, auxPoint int) *ridgeComplement {
	base := points[ridgeVerts[0]]
	ridgeEdges := make([][]float64, 0, len(ridgeVerts)-1)
	for i := 1; i < len(ridgeVerts); i++ {
		ridgeEdges = append(ridgeEdges, sub(points[ridgeVerts[i]], base))
	}

	auxEdge := sub(points[auxPoint], base)
	e0 := normalize(orthoFloat64(append(append([][]float64{}, ridgeEdges...), auxEdge)))

	e1 := normalize(orthoFloat64(append(append([][]float64{}, ridgeEdges...), e0)))

	return &ridgeComplement{base: base, e0: e0, e1: e1}
}

func (rc *ridgeComplement) coordinates(p []float64) (float64, float64) {
	v := sub(p, rc.base)
	x, y := dot(v, rc.e0), dot(v, rc.e1)
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// angles accumulates, across every facet incident to a ridge, the extreme
// cosine on each side of the ridge's complement plane, mirroring Angles<T>.
type angles struct {
	cosPlus, cosMinus float64
	sinPlus, sinMinus float64
}

func newAngles() *angles { return &angles{cosPlus: 1, cosMinus: 1, sinPlus: 0, sinMinus: 0} }

// computeAngles implements compute_angles: pick the first incident point as
// the reference direction (cos=1, sin=0), and for every other incident
// point track the minimum cosine (maximum angle) on its side of the sign of
// sin.
func computeAngles(rc *ridgeComplement, oppPoints [][]float64) *angles {
	a := newAngles()
	if len(oppPoints) == 0 {
		return a
	}
	refX, refY := rc.coordinates(oppPoints[0])
	for _, p := range oppPoints[1:] {
		x, y := rc.coordinates(p)
		cosV := refX*x + refY*y
		sinV := refX*y - refY*x
		if sinV >= 0 {
			if cosV < a.cosPlus {
				a.cosPlus = cosV
				a.sinPlus = sinV
			}
		} else {
			if cosV < a.cosMinus {
				a.cosMinus = cosV
				a.sinMinus = -sinV
			}
		}
	}
	return a
}

// sharpRidge implements prune_facets.cpp's sharp_ridge: a ridge with only
// one incident facet is sharp by definition (it bounds the current
// manifold); otherwise it is sharp iff both extreme angles are below 90
// degrees and their sum is too (the cosine of the sum is positive).
//
// The sign-precondition assertion below follows the Open Question decision
// recorded in DESIGN.md: computeAngles always normalizes sinPlus >= 0 and
// sinMinus >= 0 by construction, so a violation here is a geometry bug, not
// reachable from valid input.
func sharpRidge(a *angles) bool {
	if !(a.sinPlus >= 0 && a.sinMinus >= 0) {
		invariantf("sharpRidge: sinPlus=%v sinMinus=%v violates non-negativity precondition", a.sinPlus, a.sinMinus)
	}
	if a.cosPlus <= 0 || a.cosMinus <= 0 {
		return false
	}
	cosSum := a.cosPlus*a.cosMinus - a.sinPlus*a.sinMinus
	return cosSum > 0
}

// pruneFacetsIncidentToSharpRidges implements prune_facets_incident_to_sharp_ridges:
// starting from the facets currently flagged active, repeatedly find ridges
// whose dihedral wedge is sharp and deactivate every facet incident to such
// a ridge, propagating through each deactivated facet's other ridges, to a
// fixpoint.
func pruneFacetsIncidentToSharpRidges(facets []*dfacet, active []bool, points map[int][]float64, isInterior func(int) bool) {
	ridges := make(map[ridge.Key]*ridgeAssoc)
	for fi, a := range active {
		if a {
			addToRidges(facets, fi, ridges)
		}
	}

	suspicious := make([]ridge.Key, 0, len(ridges))
	for k := range ridges {
		suspicious = append(suspicious, k)
	}

	for len(suspicious) > 0 {
		next := make([]ridge.Key, 0)
		nextSeen := make(map[ridge.Key]bool)

		for _, k := range suspicious {
			ra, ok := ridges[k]
			if !ok {
				continue
			}
			boundary := false
			for _, v := range ra.verts {
				if isInterior != nil && !isInterior(v) {
					boundary = true
					break
				}
			}
			if boundary {
				continue
			}

			var live []int
			for idx, fi := range ra.facetIdxs {
				if active[fi] {
					live = append(live, idx)
				}
			}
			if len(live) == 0 {
				delete(ridges, k)
				continue
			}

			rc := buildRidgeComplement(points, ra.verts, ra.oppVerts[live[0]])
			oppPoints := make([][]float64, len(live))
			for i, idx := range live {
				oppPoints[i] = points[ra.oppVerts[idx]]
			}

			sharp := len(live) == 1
			if !sharp {
				sharp = sharpRidge(computeAngles(rc, oppPoints))
			}
			if !sharp {
				continue
			}

			for _, idx := range live {
				fi := ra.facetIdxs[idx]
				if !active[fi] {
					continue
				}
				active[fi] = false
				f := facets[fi]
				skip := -1
				for i, v := range f.verts {
					if !contains(ra.verts, v) {
						skip = i
						break
					}
				}
				if skip == -1 {
					continue
				}
				addOtherRidges(facets, fi, skip, ridges)
				for s := range f.verts {
					if s == skip {
						continue
					}
					nk := f.ridgeKeyExcluding(s)
					if !nextSeen[nk] {
						nextSeen[nk] = true
						next = append(next, nk)
					}
				}
			}
			delete(ridges, k)
		}
		suspicious = next
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
