package hull

import (
	"errors"
	"fmt"
)

// Sentinel errors for the convex-hull engine (spec §7). These are returned,
// never panicked: they describe caller-input conditions, not geometry bugs.
var (
	// ErrTooFewPoints is returned when fewer than N+1 distinct points remain
	// after quantisation.
	ErrTooFewPoints = errors.New("hull: fewer than N+1 points to build an initial simplex")

	// ErrSimplexNotFound is returned when no N+1 affinely independent points
	// exist in the input (every point lies on a common hyperplane).
	ErrSimplexNotFound = errors.New("hull: no N+1 affinely independent points found")

	// ErrAllFacetsVisible is returned when every current facet is visible
	// from an inserted point, which would leave the hull with no boundary —
	// a sign the input is degenerate in a way the initial simplex scan
	// didn't catch.
	ErrAllFacetsVisible = errors.New("hull: all facets visible from an inserted point")

	// ErrDirectionOnPlane is returned when a candidate facet's plane passes
	// exactly through its direction point and no already-oriented
	// neighbouring facet is available to resolve the tie.
	ErrDirectionOnPlane = errors.New("hull: direction point lies exactly on the candidate facet's plane")
)

// InvariantError reports a violated geometry invariant: a bug in this
// package reached mid-computation, not a caller mistake. Mirrors
// bigint.InvariantError and ridge.InvariantError.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "hull: invariant violated: " + e.Msg }

func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
