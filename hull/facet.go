package hull

import (
	"sort"

	"github.com/cppd/math-sub006/bigint"
	"github.com/cppd/math-sub006/ridge"
)

// facet is one (N-1)-dimensional face of the hull under construction: N
// vertex indices into the engine's point slice, an outward-pointing exact
// orthogonal complement, per-ridge neighbour links, and (while the facet is
// still on the boundary) the set of remaining points it conflicts with.
//
// neighbors is parallel to verts: neighbors[k] is the facet sharing the
// ridge obtained by dropping verts[k]. verts is not required to stay
// sorted — ridgeKeyExcluding sorts on demand — since point insertion
// overwrites a single slot in place rather than re-sorting the whole array.
type facet struct {
	self      FacetKey
	verts     []int32
	neighbors []FacetKey
	ortho     bigint.Vec
	conflicts map[int32]struct{}
	visible   bool
}

// ridgeKeyExcluding builds the canonical ridge.Key for the ridge obtained by
// dropping verts[skip], sorting the remaining N-1 indices so that two
// facets sharing the same ridge always produce the same key regardless of
// their own internal vertex order.
func ridgeKeyExcluding(verts []int32, skip int) ridge.Key {
	tmp := make([]int32, 0, len(verts)-1)
	for i, v := range verts {
		if i == skip {
			continue
		}
		tmp = append(tmp, v)
	}
	sort.Slice(tmp, func(i, j int) bool { return tmp[i] < tmp[j] })
	return ridge.NewKey(tmp)
}

// indexOfVertex returns the slot holding vertex v, or -1 if v is not a
// vertex of this facet.
func (f *facet) indexOfVertex(v int32) int {
	for i, x := range f.verts {
		if x == v {
			return i
		}
	}
	return -1
}

// indexOfNeighbor returns the slot whose neighbour link is target. Every
// call site already knows such a slot exists (it is looking up the far
// side of a ridge it just crossed), so a miss is a geometry bug.
func (f *facet) indexOfNeighbor(target FacetKey) int {
	for i, nb := range f.neighbors {
		if nb == target {
			return i
		}
	}
	invariantf("facet: no neighbour slot links to %+v", target)
	return -1
}
