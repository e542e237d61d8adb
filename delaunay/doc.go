// Package delaunay derives a Delaunay triangulation (and, on demand, its
// dual Voronoi vertices) from a quantised point set by lifting onto the
// paraboloid z = |x|^2 and reusing package hull's convex-hull engine on the
// lifted points in one extra dimension (spec §4.4): the lower envelope of
// the lifted hull projects back down to the Delaunay triangulation.
//
// The Voronoi vertex of a cell is the circumcenter of its N+1 points,
// obtained by solving an N-dimensional linear system with the teacher's
// adapted Doolittle LU decomposition (matrix/ops.Solve), per spec §4.4.
package delaunay
