package cocone

// delaunayForFacet returns the unvisited Delaunay cell adjacent to f (the
// cell traversal should cross into next), and marks it visited. It returns
// ok=false once both of f's incident cells have already been visited (a
// one-sided facet's single cell counts as "the other side" being the
// outside of the hull, already implicitly visited).
func delaunayForFacet(f *dfacet, visited []bool) (int, bool) {
	if f.cells[1] == -1 {
		if visited[f.cells[0]] {
			return 0, false
		}
		visited[f.cells[0]] = true
		return f.cells[0], true
	}
	c0, c1 := f.cells[0], f.cells[1]
	switch {
	case !visited[c0]:
		visited[c0] = true
		return c0, true
	case !visited[c1]:
		visited[c1] = true
		return c1, true
	default:
		return 0, false
	}
}

// extractManifold implements traverse_delaunay_facets: an explicit stack
// seeded with every one-sided facet (the outside of the convex hull),
// popping and keeping cocone-flagged facets without crossing them, and
// otherwise crossing into the unvisited adjacent Delaunay cell and pushing
// its other facets — the same outside-in style as dfs.DFS, adapted from
// graph traversal to traversal across a cell complex's facet adjacency.
func extractManifold(facets []*dfacet, active []bool, cellFacets [][]int, numCells int) []bool {
	kept := make([]bool, len(facets))
	visited := make([]bool, numCells)

	var stack []int
	for fi, f := range facets {
		if f.cells[1] == -1 {
			stack = append(stack, fi)
		}
	}

	seen := make([]bool, len(facets))
	for len(stack) > 0 {
		fi := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[fi] {
			continue
		}
		seen[fi] = true

		f := facets[fi]
		if active[fi] {
			kept[fi] = true
			continue
		}

		cell, ok := delaunayForFacet(f, visited)
		if !ok {
			continue
		}
		for _, other := range cellFacets[cell] {
			if other != fi && !seen[other] {
				stack = append(stack, other)
			}
		}
	}

	return kept
}

// buildCellFacets indexes, for each Delaunay cell, the facet indices
// incident to it, for extractManifold's cell-to-facets lookup.
func buildCellFacets(facets []*dfacet, numCells int) [][]int {
	cellFacets := make([][]int, numCells)
	for fi, f := range facets {
		cellFacets[f.cells[0]] = append(cellFacets[f.cells[0]], fi)
		if f.cells[1] != -1 {
			cellFacets[f.cells[1]] = append(cellFacets[f.cells[1]], fi)
		}
	}
	return cellFacets
}
