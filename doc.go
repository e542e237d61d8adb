// Package math_sub006 documents the module as a whole; every feature
// lives in a subpackage, so there is nothing to import from here.
//
// The module is a computational-geometry and GPU-FFT toolkit:
//
//	quant/      — deterministic integer quantisation of a float64 point set
//	bigint/     — exact-arithmetic support for orientation/incircle tests
//	ridge/      — (N-1)-vertex facet-ridge keys shared by the hull/Cocone stages
//	hull/       — incremental convex hull construction (Quickhull-style conflict lists)
//	delaunay/   — Delaunay triangulation and its dual Voronoi diagram, via
//	              lifting to the hull of one dimension up
//	cocone/     — Cocone/BoundCocone manifold surface reconstruction from a
//	              Delaunay triangulation of a sampled point cloud
//	mst/        — Euclidean minimum spanning tree over a Delaunay 1-skeleton
//	core/       — the adapted graph primitives mst and delaunay build on
//	matrix/     — the adapted dense-matrix linear algebra delaunay's
//	              circumcentre/Voronoi-vertex solve uses
//	fft1d/      — iterative radix-2 Cooley-Tukey FFT for power-of-two lengths
//	bluestein/  — Bluestein's chirp-z algorithm, reducing an arbitrary-length
//	              DFT to a power-of-two fft1d transform
//	compute/    — Vulkan compute orchestration (buffers, pipelines, command
//	              recording) carrying a 2D DFT through fft1d/bluestein's
//	              scheduling decisions onto a GPU
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full
// component design and the grounding ledger behind each package's
// implementation choices.
package math_sub006
