package quant

import "errors"

// Sentinel errors for Quantize, one per spec §7 input-error kind this
// package is responsible for.
var (
	// ErrEmptyInput indicates zero input points were supplied.
	ErrEmptyInput = errors.New("quant: no input points")

	// ErrDimensionMismatch indicates input points do not all share one dimension.
	ErrDimensionMismatch = errors.New("quant: points have inconsistent dimension")

	// ErrAllEqual indicates the input bounding box has zero infinity-norm extent
	// (spec Non-goals: "numerically degenerate inputs whose bounding box has
	// zero extent are rejected as an input error").
	ErrAllEqual = errors.New("quant: bounding box has zero extent")

	// ErrOutOfRange indicates a quantised coordinate fell outside [0, maxValue].
	ErrOutOfRange = errors.New("quant: quantised coordinate out of range")

	// ErrNonFinite indicates an input coordinate was not a finite IEEE-754 float.
	ErrNonFinite = errors.New("quant: non-finite input coordinate")
)
