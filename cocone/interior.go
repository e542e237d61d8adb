package cocone

import "math"

// ratioCondition implements Definition 5.4(i): a vertex's cocone radius
// must not exceed rho times its Voronoi height.
func ratioCondition(rho float64, mv *manifoldVertex) bool {
	return mv.radius <= rho*mv.height
}

// normalCondition implements Definition 5.4(ii): the angle between a
// vertex's positive pole and a neighbour's positive pole must not exceed
// alpha (expressed as |cos(angle)| >= cos(alpha)).
func normalCondition(cosAlpha float64, a, b *manifoldVertex) bool {
	return math.Abs(dot(a.positiveNorm, b.positiveNorm)) >= cosAlpha
}

// initialPhase seeds the interior set with every vertex that individually
// satisfies the ratio condition and the normal condition against all of its
// cocone neighbours.
func initialPhase(rho, alpha float64, verts map[int]*manifoldVertex) map[int]bool {
	cosAlpha := math.Cos(alpha)
	interior := make(map[int]bool)
	for v, mv := range verts {
		if !ratioCondition(rho, mv) {
			continue
		}
		ok := true
		for _, n := range mv.coconeNeighbors {
			if nv, present := verts[n]; present && !normalCondition(cosAlpha, mv, nv) {
				ok = false
				break
			}
		}
		if ok {
			interior[v] = true
		}
	}
	return interior
}

// expansionPhase grows the interior set to a fixpoint: a non-interior
// vertex becomes interior once it satisfies the ratio condition and the
// normal condition against at least one already-interior neighbour.
func expansionPhase(rho, alpha float64, verts map[int]*manifoldVertex, interior map[int]bool) {
	cosAlpha := math.Cos(alpha)
	for {
		changed := false
		for v, mv := range verts {
			if interior[v] {
				continue
			}
			for _, n := range mv.coconeNeighbors {
				if !interior[n] {
					continue
				}
				nv := verts[n]
				if ratioCondition(rho, mv) && normalCondition(cosAlpha, mv, nv) {
					interior[v] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			return
		}
	}
}

// findInteriorVertices implements find_interior_vertices: initial_phase
// followed by expansion_phase to a fixpoint over the cocone-neighbour graph.
func findInteriorVertices(rho, alpha float64, verts map[int]*manifoldVertex) map[int]bool {
	interior := initialPhase(rho, alpha, verts)
	expansionPhase(rho, alpha, verts, interior)
	return interior
}

// interiorFacet implements interior_facet: a facet survives BoundCocone
// pruning iff every one of its vertices is both a cocone vertex for this
// facet and, when checkInterior is non-nil, reported interior by it; it
// must also have at least one genuinely interior-and-cocone vertex (a
// facet entirely on the boundary between interior and non-interior
// vertices is not itself interior).
func interiorFacet(f *dfacet, checkInterior func(int) bool) bool {
	anyInterior := false
	for i, v := range f.verts {
		if !f.cocone[i] {
			return false
		}
		if checkInterior == nil || checkInterior(v) {
			anyInterior = true
		} else {
			return false
		}
	}
	return anyInterior
}

// findInteriorFacets implements find_interior_facets: the facets, among
// those already flagged cocone-complete, whose vertices are all interior.
func findInteriorFacets(facets []*dfacet, checkInterior func(int) bool) []bool {
	res := make([]bool, len(facets))
	for i, f := range facets {
		res[i] = interiorFacet(f, checkInterior)
	}
	return res
}

func alwaysInterior(int) bool { return true }
