package mst

import (
	"errors"
	"fmt"
)

// ErrEmptyTriangulation is returned by Compute when the Delaunay result has
// no cells, so there is no 1-skeleton to build a spanning tree from.
var ErrEmptyTriangulation = errors.New("mst: delaunay result has no cells")

// InvariantError reports a bug in the 1-skeleton construction: a Delaunay
// point index outside what dr.PointCoords recognises, or a core.Graph
// vertex ID that did not round-trip through strconv.Itoa/Atoi.
type InvariantError struct{ Msg string }

func (e *InvariantError) Error() string { return "mst: invariant violated: " + e.Msg }

func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
