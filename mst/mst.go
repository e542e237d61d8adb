package mst

import (
	"math"
	"strconv"

	"github.com/cppd/math-sub006/core"
	"github.com/cppd/math-sub006/delaunay"
	"github.com/cppd/math-sub006/prim_kruskal"
)

// Edge is one edge of the computed minimum spanning tree, with endpoints as
// delaunay.Cell vertex indices (the original point indices, not core.Graph's
// string vertex IDs) and its Euclidean weight in the input coordinate
// frame.
type Edge struct {
	A, B   int
	Weight float64
}

// Compute builds the 1-skeleton of dr's Delaunay cells as a *core.Graph
// (deduplicating the edges shared by adjacent cells) and runs
// prim_kruskal.Kruskal over it, converting the result back into the
// original point-index/float64-weight frame.
func Compute(dr delaunay.Result, opts ...Option) ([]Edge, float64, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	cfg = cfg.resolve()

	if len(dr.Cells) == 0 {
		return nil, 0, ErrEmptyTriangulation
	}

	graph := core.NewGraph(core.WithWeighted())

	for _, cell := range dr.Cells {
		for i := 0; i < len(cell.Verts); i++ {
			for j := i + 1; j < len(cell.Verts); j++ {
				if err := addEdge(graph, dr, cell.Verts[i], cell.Verts[j], cfg.weightScale); err != nil {
					return nil, 0, err
				}
			}
		}
	}

	edges, totalWeight, err := runAlgorithm(graph, cfg.algorithm)
	if err != nil {
		return nil, 0, err
	}

	out := make([]Edge, len(edges))
	for i, e := range edges {
		a, err := strconv.Atoi(e.From)
		if err != nil {
			invariantf("vertex id %q is not a Delaunay point index: %v", e.From, err)
		}
		b, err := strconv.Atoi(e.To)
		if err != nil {
			invariantf("vertex id %q is not a Delaunay point index: %v", e.To, err)
		}
		out[i] = Edge{A: a, B: b, Weight: float64(e.Weight) / cfg.weightScale}
	}

	return out, totalWeight / cfg.weightScale, nil
}

// runAlgorithm dispatches to the teacher's Kruskal or Prim implementation,
// normalising both to a float64 total weight. Prim needs a starting
// vertex; the graph's lexicographically-first vertex ID keeps the choice
// deterministic without biasing which point it is.
func runAlgorithm(graph *core.Graph, algorithm Algorithm) ([]core.Edge, float64, error) {
	if algorithm == AlgorithmPrim {
		vertices := graph.Vertices()
		if len(vertices) == 0 {
			return nil, 0, ErrEmptyTriangulation
		}
		edges, totalWeight, err := prim_kruskal.Prim(graph, vertices[0])
		return edges, float64(totalWeight), err
	}

	edges, totalWeight, err := prim_kruskal.Kruskal(graph)
	return edges, float64(totalWeight), err
}

func addEdge(graph *core.Graph, dr delaunay.Result, i, j int, weightScale float64) error {
	from, to := strconv.Itoa(i), strconv.Itoa(j)
	if graph.HasEdge(from, to) {
		return nil
	}

	pi, ok := dr.PointCoords(i)
	if !ok {
		invariantf("unknown point index %d", i)
	}
	pj, ok := dr.PointCoords(j)
	if !ok {
		invariantf("unknown point index %d", j)
	}

	var sum float64
	for k := range pi {
		d := pi[k] - pj[k]
		sum += d * d
	}
	dist := math.Sqrt(sum)
	weight := int64(math.Round(dist * weightScale))

	_, err := graph.AddEdge(from, to, weight)
	return err
}
