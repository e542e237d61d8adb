package delaunay

import (
	"errors"
	"fmt"
)

// ErrVoronoiUndefined is returned by Result.VoronoiVertex when the cell's
// N+1 points are too close to degenerate for the circumcenter linear
// system to have a well-defined solution (a singular pivot during
// substitution).
var ErrVoronoiUndefined = errors.New("delaunay: voronoi vertex undefined for this cell")

// InvariantError reports a violated geometry invariant reached
// mid-computation — a bug in this package, not a caller mistake.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "delaunay: invariant violated: " + e.Msg }

func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
