package hull

import (
	"runtime"

	"github.com/cppd/math-sub006/bigint"
	"github.com/cppd/math-sub006/quant"
)

// Facet is one face of a computed hull, expressed in terms of the caller's
// original point indices (quant.Point.Index) rather than this package's
// internal, quantisation-local ones.
type Facet struct {
	// Verts holds the N original point indices spanning this facet.
	Verts []int
	// Normal is the outward unit normal, as a best-effort float64
	// approximation of the exact integer orthogonal complement.
	Normal []float64
	// Ortho is the exact outward orthogonal complement, in the same
	// quantised-integer coordinate frame as the input. Callers needing an
	// exact sign test (delaunay's lower-envelope filter, in particular)
	// should test this rather than Normal.
	Ortho bigint.Vec
}

// Result is the output of Compute: the boundary of the convex hull.
type Result struct {
	N      int
	Facets []Facet
}

// engine holds the mutable state of one Compute call: the facet arena, the
// point coordinates (indexed by quantisation-local index), and the
// bidirectional conflict bookkeeping (spec §5) that lets each insertion
// find the facets it must remove and each surviving facet find the points
// still in front of it.
type engine struct {
	arena  *arena
	coords []bigint.Vec
	cfg    config

	// pointConflicts[p] is the set of facets currently visible from point
	// p. A point absent from the map (or mapped to an empty set) is
	// already interior to the hull under construction.
	pointConflicts map[int32]map[FacetKey]struct{}

	inSimplex []bool
}

// Compute builds the convex hull of points via randomized incremental
// insertion (spec §4.3, §5). points is assumed already quantised and
// randomly permuted by quant.Quantize; a plain left-to-right scan for the
// initial simplex and for insertion order then gives the algorithm's
// expected O(n log n) behaviour without this package needing its own RNG.
func Compute(points quant.Set, opts ...Option) (Result, error) {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, o := range opts {
		o(&cfg)
	}

	coords := make([]bigint.Vec, len(points.Points))
	for i, p := range points.Points {
		coords[i] = p.Coords
	}

	chosen, err := findInitialSimplex(coords, points.N)
	if err != nil {
		return Result{}, err
	}

	e := &engine{
		arena:          newArena(),
		coords:         coords,
		cfg:            cfg,
		pointConflicts: make(map[int32]map[FacetKey]struct{}),
		inSimplex:      make([]bool, len(coords)),
	}
	for _, v := range chosen {
		e.inSimplex[v] = true
	}

	initial, err := buildInitialFacets(e.arena, coords, chosen)
	if err != nil {
		return Result{}, err
	}
	e.buildInitialConflicts(initial)

	total := len(coords)
	done := 0
	report := func() {
		done++
		if cfg.progress != nil {
			cfg.progress(done, total)
		}
	}

	for p := int32(0); p < int32(len(coords)); p++ {
		if e.inSimplex[p] {
			report()
			continue
		}
		if len(e.pointConflicts[p]) == 0 {
			report()
			continue
		}
		if err := e.insertPoint(p); err != nil {
			return Result{}, err
		}
		report()
	}

	return e.result(points), nil
}

// visibleFrom reports whether point p lies strictly in front of facet f's
// outward-oriented plane.
func (e *engine) visibleFrom(f *facet, p int32) bool {
	diff, err := bigint.Sub(e.coords[p], e.coords[f.verts[0]])
	if err != nil {
		invariantf("visibleFrom: %v", err)
	}
	d, err := bigint.Dot(f.ortho, diff)
	if err != nil {
		invariantf("visibleFrom: %v", err)
	}
	return d.Sign() > 0
}

// buildInitialConflicts computes, for every non-simplex point, the set of
// initial facets it conflicts with. The visibility tests run in parallel
// (read-only: the initial facets are already fully built and never
// mutated concurrently); the results are merged into the shared
// pointConflicts/facet.conflicts maps in one cheap sequential pass.
func (e *engine) buildInitialConflicts(keys []FacetKey) {
	n := len(e.coords)
	visible := make([][]FacetKey, n)
	parallelFor(e.cfg.workers, n, func(i int) {
		p := int32(i)
		if e.inSimplex[p] {
			return
		}
		var vis []FacetKey
		for _, fk := range keys {
			if e.visibleFrom(e.arena.mustGet(fk), p) {
				vis = append(vis, fk)
			}
		}
		visible[i] = vis
	})

	for i, vis := range visible {
		if len(vis) == 0 {
			continue
		}
		p := int32(i)
		set := make(map[FacetKey]struct{}, len(vis))
		for _, fk := range vis {
			set[fk] = struct{}{}
			e.arena.mustGet(fk).conflicts[p] = struct{}{}
		}
		e.pointConflicts[p] = set
	}
}

// horizonItem describes one ridge on the boundary between the set of
// facets about to be removed (visible from the inserted point) and the
// facets that survive: oldFacet/slot identify the removed side, link the
// surviving facet across the ridge, linkSlot the slot within link that
// currently points back at oldFacet.
type horizonItem struct {
	oldFacet FacetKey
	slot     int
	link     FacetKey
	linkSlot int
	newVerts []int32
}

// itemResult is the parallel-phase output for one horizonItem: the new
// facet's oriented ortho and the subset of its parents' conflict points
// still in front of it.
type itemResult struct {
	ortho     bigint.Vec
	conflicts map[int32]struct{}
}

// insertPoint runs one step of the randomized incremental algorithm: find
// the horizon around the facets visible from p, create one new facet per
// horizon ridge (apex p), connect the new facets to each other and to the
// horizon, then retire the visible facets and redistribute their
// remaining conflict points.
//
// Grounded on original_source/src/geometry/core/convex_hull/compute.h's
// add_point_to_convex_hull / create_horizon_facets.
func (e *engine) insertPoint(p int32) error {
	visibleSet := e.pointConflicts[p]
	if len(visibleSet) == 0 {
		return nil
	}
	if len(visibleSet) == e.arena.count {
		return ErrAllFacetsVisible
	}

	for fk := range visibleSet {
		e.arena.mustGet(fk).visible = true
	}

	var items []horizonItem
	for fk := range visibleSet {
		f := e.arena.mustGet(fk)
		for slot, nb := range f.neighbors {
			if _, ok := visibleSet[nb]; ok {
				continue // interior ridge between two visible facets
			}
			link := e.arena.mustGet(nb)
			nv := make([]int32, len(f.verts))
			copy(nv, f.verts)
			nv[slot] = p
			items = append(items, horizonItem{
				oldFacet: fk,
				slot:     slot,
				link:     nb,
				linkSlot: link.indexOfNeighbor(fk),
				newVerts: nv,
			})
		}
	}
	if len(items) == 0 {
		invariantf("insertPoint: %d visible facets expose no horizon ridge", len(visibleSet))
	}

	results := make([]itemResult, len(items))
	errs := make([]error, len(items))
	parallelFor(e.cfg.workers, len(items), func(i int) {
		it := items[i]
		f := e.arena.mustGet(it.oldFacet)
		link := e.arena.mustGet(it.link)
		direction := link.verts[it.linkSlot]

		ortho, err := resolveOrtho(e.coords, it.newVerts, direction, link)
		if err != nil {
			errs[i] = err
			return
		}

		candidates := make(map[int32]struct{}, len(f.conflicts)+len(link.conflicts))
		for q := range f.conflicts {
			candidates[q] = struct{}{}
		}
		for q := range link.conflicts {
			candidates[q] = struct{}{}
		}
		delete(candidates, p)

		conflicts := make(map[int32]struct{})
		base := e.coords[it.newVerts[0]]
		for q := range candidates {
			diff, err := bigint.Sub(e.coords[q], base)
			if err != nil {
				invariantf("insertPoint: %v", err)
			}
			d, err := bigint.Dot(ortho, diff)
			if err != nil {
				invariantf("insertPoint: %v", err)
			}
			if d.Sign() > 0 {
				conflicts[q] = struct{}{}
			}
		}
		results[i] = itemResult{ortho: ortho, conflicts: conflicts}
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	newKeys := make([]FacetKey, len(items))
	for i, it := range items {
		nk := e.arena.alloc(facet{
			verts:     it.newVerts,
			neighbors: make([]FacetKey, len(it.newVerts)),
			ortho:     results[i].ortho,
			conflicts: results[i].conflicts,
		})
		newKeys[i] = nk
		e.arena.mustGet(it.link).neighbors[it.linkSlot] = nk
		e.arena.mustGet(nk).neighbors[it.slot] = it.link
	}
	connectFacets(e.arena, newKeys, p)

	// Erase first, then add: the removed facets' conflict sets are a
	// strict superset of what the new facets inherit, so clearing stale
	// entries before inserting fresh ones keeps every map small while
	// it's being searched.
	for fk := range visibleSet {
		f := e.arena.mustGet(fk)
		for q := range f.conflicts {
			if set := e.pointConflicts[q]; set != nil {
				delete(set, fk)
				if len(set) == 0 {
					delete(e.pointConflicts, q)
				}
			}
		}
	}
	for i, nk := range newKeys {
		for q := range results[i].conflicts {
			set := e.pointConflicts[q]
			if set == nil {
				set = make(map[FacetKey]struct{})
				e.pointConflicts[q] = set
			}
			set[nk] = struct{}{}
		}
	}

	for fk := range visibleSet {
		e.arena.free_(fk)
	}
	delete(e.pointConflicts, p)
	return nil
}

// result converts the arena's surviving facets into the caller-facing
// Result, translating quantisation-local vertex indices back to the
// caller's original point indices.
func (e *engine) result(points quant.Set) Result {
	keys := e.arena.live()
	out := make([]Facet, len(keys))
	for i, k := range keys {
		f := e.arena.mustGet(k)
		verts := make([]int, len(f.verts))
		for j, v := range f.verts {
			verts[j] = points.Points[v].Index
		}
		out[i] = Facet{Verts: verts, Normal: bigint.ToUnitFloat64(f.ortho), Ortho: f.ortho.Clone()}
	}
	return Result{N: points.N, Facets: out}
}
