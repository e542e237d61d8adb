// Package mst computes the Euclidean minimum spanning tree of a Delaunay
// triangulation's point set, restricted to the triangulation's 1-skeleton:
// the edges of the Delaunay cells. Since the Delaunay triangulation's edge
// set is known to contain the Euclidean MST (a classical fact used to speed
// up MST computation in low dimensions), running Kruskal's algorithm over
// just those edges, rather than the O(n^2) complete graph, gives the exact
// MST at a fraction of the cost.
//
// The algorithm is the teacher's own `prim_kruskal.Kruskal` by default, or
// `prim_kruskal.Prim` when WithAlgorithm(AlgorithmPrim) is given, adapted
// here to a *core.Graph built from a delaunay.Result rather than an
// arbitrary caller-supplied graph: vertex IDs are the Delaunay point
// indices (as decimal strings, core.Graph's vertex ID type), and edge
// weights are Euclidean distances quantised to int64, since core.Graph
// only carries integer weights.
package mst
