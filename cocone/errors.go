package cocone

import (
	"errors"
	"fmt"
)

var (
	ErrPositivePoleNotFinite = errors.New("cocone: positive pole vector not finite")
	ErrNegativePoleNotFound  = errors.New("cocone: negative pole vector not found")
	ErrNegativePoleNotFinite = errors.New("cocone: negative pole vector not finite")
	ErrIntersectionNotFound  = errors.New("cocone: cocone intersection not found")
	ErrIntersectionNotFinite = errors.New("cocone: cocone intersection distance not finite")
	ErrNoCoconeFacets        = errors.New("cocone: no cocone facets remain")
	ErrNoInteriorVertices    = errors.New("cocone: no interior vertices found")
	ErrNoManifold            = errors.New("cocone: no manifold facets after extraction")
	ErrRhoOutOfRange         = errors.New("cocone: rho must be in the open interval (0, 1)")
	ErrAlphaOutOfRange       = errors.New("cocone: alpha must be in the open interval (0, 1) radians")
)

// InvariantError reports a geometry invariant violated mid-computation: a
// bug surfacing from degenerate input that should have been rejected
// earlier (e.g. by hull/delaunay), not a normal input error.
type InvariantError struct{ Msg string }

func (e *InvariantError) Error() string { return "cocone: invariant violated: " + e.Msg }

func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
