// Package cocone reconstructs a surface mesh from an unorganised point
// cloud sampled from an unknown manifold, via the Cocone/BoundCocone
// algorithm of Amenta, Choi, Dey and Leekha as adapted by
// original_source/src/geometry/reconstruction/{cocone,structure,interior,
// prune_facets,extract_manifold}.cpp.
//
// The pipeline, run once in NewConstructor and shared by both Cocone and
// BoundCocone: derive the Delaunay triangulation (package delaunay), derive
// one facet record per Delaunay ridge shared by one or two cells, compute
// each vertex's positive pole/height/radius and each facet's per-vertex
// cocone flag, then on demand prune sharp ridges and extract the manifold
// by an outside-in walk over the Delaunay cells.
package cocone
