package hull

import "github.com/cppd/math-sub006/ridge"

// neighborRef names one vertex slot of one facet: the unit connectFacets
// wires together. Using it as ridge.Closed's facet-handle type means
// Closed.Facets(key) hands back both the facet *and* which slot to write,
// with no separate lookup needed.
type neighborRef struct {
	Key  FacetKey
	Slot int8
}

// connectFacets wires neighbour slots between every pair of facets in the
// given set that share a ridge, skipping in each facet the ridge obtained
// by dropping excludePoint, i.e. the one ridge that does not contain it
// (pass -1 to skip nothing): those ridges were already wired directly by
// the caller, since it already had both the new facet and its link in
// hand when creating them.
//
// A fresh ridge.Closed index is built per call, mirroring the short-lived
// local map of the original's FacetConnector/Connect routines rather than
// a persistent global index — grounded on
// original_source/src/geometry/core/convex_hull/facet_connector.h.
func connectFacets(a *arena, facets []FacetKey, excludePoint int32) {
	idx := ridge.NewClosed[neighborRef]()
	var keys []ridge.Key
	seen := make(map[ridge.Key]bool)

	for _, fk := range facets {
		f := a.mustGet(fk)
		for slot, v := range f.verts {
			if v == excludePoint {
				continue
			}
			k := ridgeKeyExcluding(f.verts, slot)
			idx.Add(k, neighborRef{Key: fk, Slot: int8(slot)})
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	for _, k := range keys {
		refs := idx.Facets(k)
		if len(refs) != 2 {
			// A boundary ridge within this batch: its partner lies outside
			// the set passed in (already wired by the caller some other
			// way), or it is an open ridge on a non-closed intermediate
			// shape. Either way, nothing to wire here.
			continue
		}
		x, y := refs[0], refs[1]
		a.mustGet(x.Key).neighbors[x.Slot] = y.Key
		a.mustGet(y.Key).neighbors[y.Slot] = x.Key
	}
}
