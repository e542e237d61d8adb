// Package matrix provides the dense linear-algebra primitive the Voronoi
// circumcentre solve needs: a row-major Dense matrix behind the Matrix
// interface, paired with LU decomposition and linear-system solving in
// the ops subpackage.
//
// See delaunay.Result.VoronoiVertex for the only caller: it assembles the
// (p_i - p_0) difference matrix and right-hand side for each cell's
// neighbours and calls ops.Solve to recover the circumcentre.
package matrix
