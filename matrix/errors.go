// SPDX-License-Identifier: MIT
package matrix

import "errors"

// ErrMatrixDimensionMismatch is returned when an operation receives a
// non-square matrix where a square one is required, or operands whose
// shapes are otherwise incompatible (e.g. a right-hand-side vector whose
// length does not match the system's dimension).
var ErrMatrixDimensionMismatch = errors.New("matrix: dimension mismatch")
