package hull

import "github.com/cppd/math-sub006/bigint"

// resolveOrtho computes the outward-pointing orthogonal complement of the
// facet spanned by pts[verts[0]]..pts[verts[len(verts)-1]], oriented away
// from pts[direction].
//
// directionFacet, when non-nil, is an already-oriented neighbouring facet
// sharing a ridge with the candidate: it resolves the degenerate case where
// the direction point lies exactly on the candidate's hyperplane, by
// making the candidate's ortho agree in sign with directionFacet's ortho
// wherever the two are comparable: the two facets are then coplanar, so
// they share the same outward direction.
//
// Grounded on original_source/src/geometry/core/convex_hull/facet_ortho.h.
func resolveOrtho(pts []bigint.Vec, verts []int32, direction int32, directionFacet *facet) (bigint.Vec, error) {
	base := pts[verts[0]]
	edges := make([]bigint.Vec, len(verts)-1)
	for i := 1; i < len(verts); i++ {
		e, err := bigint.Sub(pts[verts[i]], base)
		if err != nil {
			return nil, err
		}
		edges[i-1] = e
	}
	ortho := bigint.Ortho(edges)

	toDirection, err := bigint.Sub(pts[direction], base)
	if err != nil {
		return nil, err
	}
	d, err := bigint.Dot(ortho, toDirection)
	if err != nil {
		return nil, err
	}

	switch d.Sign() {
	case 0:
		if directionFacet == nil {
			return nil, ErrDirectionOnPlane
		}
		if areOpposite(ortho, directionFacet.ortho) {
			negate(ortho)
		}
	case 1:
		negate(ortho)
	}
	// d.Sign() < 0: ortho already points away from the direction point.
	return ortho, nil
}

// negate flips every component of v in place.
func negate(v bigint.Vec) {
	for _, x := range v {
		x.Neg(x)
	}
}

// areOpposite reports whether a and b disagree in sign on at least one
// component where both are non-zero, and never agree on any such
// component. A component where either side is zero carries no information
// and is skipped.
func areOpposite(a, b bigint.Vec) bool {
	sawComparison := false
	for i := range a {
		sa, sb := a[i].Sign(), b[i].Sign()
		if sa == 0 || sb == 0 {
			continue
		}
		if sa == sb {
			return false
		}
		sawComparison = true
	}
	return sawComparison
}
