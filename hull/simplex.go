package hull

import "github.com/cppd/math-sub006/bigint"

// findInitialSimplex scans pts in order for the first n+1 affinely
// independent points, per spec §4.3. pts is assumed already randomly
// permuted (quant.Quantize shuffles before hull.Compute ever sees it), so a
// plain left-to-right scan gives the randomized-incremental algorithm's
// expected-linear behaviour without this package needing its own RNG.
func findInitialSimplex(pts []bigint.Vec, n int) ([]int32, error) {
	if len(pts) < n+1 {
		return nil, ErrTooFewPoints
	}

	chosen := []int32{0}
	edges := make([]bigint.Vec, 0, n)
	for i := 1; i < len(pts) && len(chosen) <= n; i++ {
		edge, err := bigint.Sub(pts[i], pts[chosen[0]])
		if err != nil {
			return nil, err
		}
		trial := append(append([]bigint.Vec{}, edges...), edge)
		if affinelyIndependent(trial) {
			edges = trial
			chosen = append(chosen, int32(i))
		}
	}
	if len(chosen) != n+1 {
		return nil, ErrSimplexNotFound
	}
	return chosen, nil
}

// affinelyIndependent reports whether the given edge vectors (all relative
// to a common base point) are linearly independent: equivalently, whether
// at least one k x k minor of the k x n edge matrix has non-zero
// determinant, where k = len(edges).
func affinelyIndependent(edges []bigint.Vec) bool {
	k := len(edges)
	if k == 0 {
		return true
	}
	n := len(edges[0])
	found := false
	forEachCombination(n, k, func(cols []int) bool {
		minor := make([]bigint.Vec, k)
		for r, e := range edges {
			row := make(bigint.Vec, k)
			for c, col := range cols {
				row[c] = e[col]
			}
			minor[r] = row
		}
		if bigint.Det(minor).Sign() != 0 {
			found = true
			return false // stop early
		}
		return true
	})
	return found
}

// forEachCombination calls fn with every k-element strictly-increasing
// subset of {0,...,n-1}, in lexicographic order, stopping early if fn
// returns false.
func forEachCombination(n, k int, fn func(cols []int) bool) {
	if k > n {
		return
	}
	cols := make([]int, k)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == k {
			return fn(cols)
		}
		for v := start; v <= n-(k-depth); v++ {
			cols[depth] = v
			if !rec(v+1, depth+1) {
				return false
			}
		}
		return true
	}
	rec(0, 0)
}

// buildInitialFacets builds the n+1 facets of the simplex spanned by
// chosen (one per omitted vertex), oriented outward using the omitted
// vertex itself as the direction point, and wires their neighbours.
func buildInitialFacets(a *arena, pts []bigint.Vec, chosen []int32) ([]FacetKey, error) {
	n := len(chosen) - 1
	keys := make([]FacetKey, len(chosen))
	for omit := range chosen {
		verts := make([]int32, 0, n)
		for i, v := range chosen {
			if i != omit {
				verts = append(verts, v)
			}
		}
		ortho, err := resolveOrtho(pts, verts, chosen[omit], nil)
		if err != nil {
			return nil, err
		}
		keys[omit] = a.alloc(facet{
			verts:     verts,
			neighbors: make([]FacetKey, n),
			ortho:     ortho,
			conflicts: make(map[int32]struct{}),
		})
	}
	connectFacets(a, keys, -1)
	return keys, nil
}
